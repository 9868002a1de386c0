package ports

import (
	"context"
	"encoding/json"
)

// TicketSource yields the raw ticket records of a document, in order.
type TicketSource interface {
	Load(ctx context.Context, path string) ([]json.RawMessage, error)
}
