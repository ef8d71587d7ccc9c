package objstore

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// encodePath percent-encodes a source path for header transport. Every byte
// outside the RFC 3986 unreserved set is escaped; path separators are kept
// so the bucket/key structure stays visible. Keys may contain spaces, "?",
// "#" and non-ASCII runes, none of which are valid raw in a header value.
func encodePath(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.', r == '~', r == '/':
			b.WriteRune(r)
		default:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for _, c := range buf[:n] {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
	}
	return b.String()
}
