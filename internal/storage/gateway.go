// Package storage provides the persistence gateway: a single named
// slot holding the serialized note collection as a UTF-8 blob.
// Gateways do no validation, just raw read/write.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when the slot has never been written.
var ErrNotFound = errors.New("slot not found")

// DefaultSlot is the slot name the note collection lives under.
const DefaultSlot = "bolt_notes"

// Gateway reads and writes the full collection blob. Implementations
// replace the whole slot on every Write.
type Gateway interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}
