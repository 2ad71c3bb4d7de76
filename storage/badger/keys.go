package badger

import (
	"fmt"

	"github.com/poiesic/docrank/core"
)

// Key prefixes for different data types
const (
	documentPrefix     = "docrec"
	documentNamePrefix = "docname"
)

// makeDocumentKey generates a key for a structure document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentNameKey generates a key for the filename index.
// Format: prefix:filename
func makeDocumentNameKey(filename string) []byte {
	prefix := documentNamePrefix + ":"
	buf := make([]byte, len(prefix)+len(filename))
	offset := copy(buf, prefix)
	copy(buf[offset:], filename)
	return buf
}
