package core

import "fmt"

// Client is a billable party. Records are created once by the Ledger and
// never edited.
type Client struct {
	id    string
	name  string
	email string
}

// NewClient builds a client record with a caller-supplied identifier.
func NewClient(id, name, email string) *Client {
	return &Client{id: id, name: name, email: email}
}

func (c *Client) ID() string    { return c.id }
func (c *Client) Name() string  { return c.name }
func (c *Client) Email() string { return c.email }

func (c *Client) String() string {
	return fmt.Sprintf("ID: %s | Name: %s", c.id, c.name)
}
