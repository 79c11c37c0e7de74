package app

// AddClientRequest is the input for registering a client.
type AddClientRequest struct {
	Name  string
	Email string
}

// GenerateInvoiceRequest is the input for billing a client.
type GenerateInvoiceRequest struct {
	ClientName   string
	ProjectTitle string
	Items        []ItemInput
}

// ItemInput is one invoice line as typed by the user. Quantity and
// UnitPrice are parsed by the service.
type ItemInput struct {
	Description string
	Quantity    string
	UnitPrice   string
}

// RecordPaymentRequest is the input for recording a payment.
type RecordPaymentRequest struct {
	ProjectTitle string
	Amount       string
}
