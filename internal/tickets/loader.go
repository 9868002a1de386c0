// Package tickets reads ticket documents and validates individual records.
//
// Documents are JSON objects holding a "tickets" array. Files may carry
// // line comments and /* block comments */, which are stripped before
// decoding. Trailing commas are not accepted.
package tickets

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/tidwall/jsonc"

	domainErrors "github.com/thomas-vilte/flighttime/internal/errors"
)

const (
	ticketsField = "tickets"
	previewLimit = 64

	// commaMask stands in for commas while comments are stripped.
	commaMask = '\x01'
)

// ReadFile opens the document at path and returns its raw ticket records in
// document order.
func ReadFile(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domainErrors.ErrOpenInput.WithError(err).WithContext("path", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, domainErrors.ErrOpenInput.WithError(err).WithContext("path", path)
	}
	if info.IsDir() {
		pathErr := &os.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
		return nil, domainErrors.ErrOpenInput.WithError(pathErr).WithContext("path", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domainErrors.ErrReadInput.WithError(err).WithContext("path", path)
	}

	return Parse(data)
}

// Parse decodes a ticket document and returns the elements of its "tickets"
// array without inspecting them.
func Parse(data []byte) ([]json.RawMessage, error) {
	stripped := bytes.TrimSpace(stripComments(data))
	if len(stripped) == 0 {
		return nil, domainErrors.ErrNotObject.WithContext("value", "null")
	}

	var root json.RawMessage
	if err := json.Unmarshal(stripped, &root); err != nil {
		appErr := domainErrors.ErrInvalidJSON.WithError(err)
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			appErr = appErr.WithContext("offset", syntaxErr.Offset)
		}
		return nil, appErr
	}

	if root[0] != '{' {
		return nil, domainErrors.ErrNotObject.WithContext("value", preview(root))
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(root, &document); err != nil {
		return nil, domainErrors.ErrInvalidJSON.WithError(err)
	}

	field, ok := document[ticketsField]
	if !ok {
		return nil, domainErrors.ErrMissingTickets
	}

	if field[0] != '[' {
		return nil, domainErrors.ErrTicketsNotArray.WithContext("value", preview(field))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(field, &records); err != nil {
		return nil, domainErrors.ErrTicketsNotArray.WithError(err)
	}

	return records, nil
}

// stripComments blanks out comments. Commas are masked while stripping so
// that trailing commas reach the decoder and fail there. Input already holding
// the mask byte is left as is; the decoder rejects it.
func stripComments(data []byte) []byte {
	if bytes.IndexByte(data, commaMask) >= 0 {
		return data
	}

	masked := bytes.ReplaceAll(data, []byte{','}, []byte{commaMask})
	return bytes.ReplaceAll(jsonc.ToJSON(masked), []byte{commaMask}, []byte{','})
}

// preview returns the compact form of a JSON value, shortened for messages.
func preview(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		buf.Reset()
		buf.Write(raw)
	}

	s := buf.String()
	if len(s) > previewLimit {
		s = s[:previewLimit] + "..."
	}
	return s
}
