package painlog

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/unicode/norm"
)

// canonicalString produces a canonical JSON string literal:
//   - NFC normalized at the serialization boundary
//   - no HTML escaping (<, >, & stay literal)
//
// Canonical form matters because the blob is compared byte-for-byte in
// tests and must not depend on encoder quirks.
func canonicalString(s string) []byte {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		// Encoding a plain string cannot fail; keep the signature total.
		return []byte(`""`)
	}

	// json.Encoder adds a trailing newline, remove it.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result
}
