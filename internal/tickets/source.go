package tickets

import (
	"context"
	"encoding/json"

	"github.com/thomas-vilte/flighttime/internal/logger"
)

// FileSource loads ticket documents from the local filesystem.
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) Load(ctx context.Context, path string) ([]json.RawMessage, error) {
	logger.Debug(ctx, "reading tickets file", "path", path)

	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "tickets file loaded", "path", path, "count", len(records))
	return records, nil
}
