package store

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
)

// Marker prefixes echoed back from companion files during verification.
const (
	AddressMarker      = "Address (LXMF):"
	IdentityHashMarker = "Identity Hash:"
)

// Companion is the loaded content of an identity's ".txt" dump. The format
// is free-form; matching is substring search, not structured parsing.
type Companion struct {
	Path    string
	content string
}

// LoadCompanion reads "<path>.txt" if it exists. A missing file returns
// (nil, nil): the companion is optional.
func LoadCompanion(path string) (*Companion, error) {
	txt := path + ".txt"
	data, err := os.ReadFile(txt)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &Companion{Path: txt, content: string(data)}, nil
}

// ContainsHex reports whether the lowercase hex encoding of key appears
// anywhere in the companion content.
func (c *Companion) ContainsHex(key []byte) bool {
	return strings.Contains(c.content, hex.EncodeToString(key))
}

// MarkerLines returns the lines starting with the address and identity-hash
// markers, in file order.
func (c *Companion) MarkerLines() []string {
	var out []string
	for _, line := range strings.Split(c.content, "\n") {
		if strings.HasPrefix(line, AddressMarker) || strings.HasPrefix(line, IdentityHashMarker) {
			out = append(out, line)
		}
	}
	return out
}
