package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix and the digest of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// StyleKeyOpts are the inputs that determine a generated style.
type StyleKeyOpts struct {
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Variant     string  `json:"variant"`
}

// Keyer builds cache keys under an optional namespace.
type Keyer struct {
	prefix string
}

// NewKeyer returns a keyer whose keys start with prefix.
func NewKeyer(prefix string) Keyer {
	return Keyer{prefix: prefix}
}

// Scoped returns a keyer nested under an additional prefix, for example to
// separate tenants sharing one Redis.
func (k Keyer) Scoped(prefix string) Keyer {
	return Keyer{prefix: k.prefix + prefix}
}

// StyleKey returns the key of a generated style. Prompts are compared after
// trimming surrounding whitespace.
func (k Keyer) StyleKey(opts StyleKeyOpts) string {
	opts.Prompt = strings.TrimSpace(opts.Prompt)
	return k.prefix + hashKey("style", opts)
}
