package mcpserver

import (
	"errors"
	"fmt"

	"github.com/jacoelho/ebar/internal/document"
)

// maxDocumentSize bounds inline documents accepted from clients.
const maxDocumentSize = 10 << 20

var (
	errNoDocument       = errors.New("document is required")
	errDocumentTooLarge = fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
)

// decodeDocument decodes an inline document. An empty format name selects
// fallback.
func decodeDocument(content, formatName string, fallback document.Format) (any, error) {
	if content == "" {
		return nil, errNoDocument
	}
	if len(content) > maxDocumentSize {
		return nil, errDocumentTooLarge
	}

	format := fallback
	if formatName != "" {
		f, err := document.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return document.Decode([]byte(content), format)
}
