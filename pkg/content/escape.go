package content

import "strings"

const upperHex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s as a URI component. Letters, digits and
// -_.!~*'() pass through; every other byte of the UTF-8 encoding becomes %XX.
// This differs from url.QueryEscape, which writes spaces as '+' and escapes
// !'()*.
func EscapeComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&15])
	}
	return sb.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
