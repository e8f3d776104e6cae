package crypto

import (
	"crypto/sha256"
	"strings"
)

// NameHashSize is the truncation length of a destination name hash.
const NameHashSize = 10

// NameHash hashes the dotted full name of a destination context and
// truncates to NameHashSize bytes.
//
// For the LXMF delivery context this is SHA256("lxmf.delivery")[:10].
func NameHash(app string, aspects ...string) [NameHashSize]byte {
	full := app
	if len(aspects) > 0 {
		full += "." + strings.Join(aspects, ".")
	}
	sum := sha256.Sum256([]byte(full))
	var out [NameHashSize]byte
	copy(out[:], sum[:NameHashSize])
	return out
}
