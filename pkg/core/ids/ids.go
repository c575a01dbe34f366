// Package ids generates short, human-writable identifiers for otherwise
// anonymous chains and structures, for use as default Name values.
package ids

import (
	"crypto/rand"

	b58 "github.com/mr-tron/base58/base58"
)

// idBytes is the amount of entropy encoded into each generated identifier.
// 8 bytes base58-encodes to 10-11 characters, short enough to be useful as a
// default display name.
const idBytes = 8

// New returns a random base58-encoded identifier prefixed with prefix (e.g.
// "chain-", "structure-"). It panics if the system entropy source fails,
// which in practice only happens if the OS's random device is unavailable.
func New(prefix string) string {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		panic("ids: reading random bytes: " + err.Error())
	}
	return prefix + b58.Encode(buf)
}
