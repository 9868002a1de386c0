package services

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type MockTicketSource struct {
	mock.Mock
}

func (m *MockTicketSource) Load(ctx context.Context, path string) ([]json.RawMessage, error) {
	args := m.Called(ctx, path)
	records, _ := args.Get(0).([]json.RawMessage)
	return records, args.Error(1)
}
