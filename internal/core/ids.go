package core

import (
	"strings"

	"github.com/google/uuid"
)

const (
	clientIDLength  = 6
	invoiceIDLength = 8
)

// IDGenerator returns an opaque identifier of the requested length.
type IDGenerator func(length int) string

// NewShortID returns the first length hex digits of a random v4 UUID.
func NewShortID(length int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length <= 0 || length > len(id) {
		return id
	}
	return id[:length]
}
