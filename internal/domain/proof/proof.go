// Package proof produces the content fingerprint attached to every report.
//
// The fingerprint is a SHA-256 digest of the raw (pre-clamping) score map
// canonicalized with sorted keys and shortest-round-trip float formatting, so
// two calls with the same raw input always produce the same digest no matter
// how the map was built.
package proof

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint returns the lowercase hex SHA-256 digest of the canonical form
// of raw. The digest is a function of raw input only.
func Fingerprint(raw map[string]float64) string {
	sum := sha256.Sum256([]byte(Canonical(raw)))
	return hex.EncodeToString(sum[:])
}

// Canonical serializes raw as a compact JSON object with keys in sorted
// order and floats in shortest round-trip form. Exposed so the canonical
// form itself can be asserted against in tests and by external verifiers.
func Canonical(raw map[string]float64) string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(raw[k], 'g', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}
