package storage

import "context"

// MemoryGateway holds the blob in memory. Used as the test fake.
type MemoryGateway struct {
	data    []byte
	written bool

	// FailWrite, when set, is returned by the next Write. Lets tests
	// exercise write-failure recovery.
	FailWrite error
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Seed pre-loads the slot, as if a previous session had written it.
func (g *MemoryGateway) Seed(data []byte) {
	g.data = append([]byte(nil), data...)
	g.written = true
}

func (g *MemoryGateway) Read(ctx context.Context) ([]byte, error) {
	if !g.written {
		return nil, ErrNotFound
	}
	return append([]byte(nil), g.data...), nil
}

func (g *MemoryGateway) Write(ctx context.Context, data []byte) error {
	if g.FailWrite != nil {
		return g.FailWrite
	}
	g.data = append([]byte(nil), data...)
	g.written = true
	return nil
}

func (g *MemoryGateway) Close() error { return nil }
