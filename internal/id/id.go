// Package id generates prefixed identifiers for catalog instances.
package id

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PrefixCatalog prefixes identifiers handed out to catalog instances.
const PrefixCatalog = "cat"

// nanoLength is the default NanoID length.
const nanoLength = 21

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "cat-V1StGXR8_Z5jdHi6B-myT").
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewCatalogID returns a fresh catalog identifier.
func NewCatalogID() string {
	return MustGenerate(PrefixCatalog)
}

// HasPrefix reports whether id looks like an identifier produced by Generate for prefix.
func HasPrefix(id, prefix string) bool {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	return ok && len(rest) == nanoLength
}
