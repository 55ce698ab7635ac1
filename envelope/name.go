package envelope

import "strings"

// ResolveName maps a wire tag name to the canonical type identifier used
// for registry lookups: "status_message" becomes "StatusMessage",
// "ns/sub_type" becomes "Ns.SubType". Underscores capitalize the
// following word, slashes additionally insert the "." namespace
// separator. Consecutive separators collapse. Input is expected to be
// lower-case ASCII per the wire convention.
func ResolveName(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	upper := true
	pendingDot := false
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch c {
		case '_':
			upper = true
		case '/':
			pendingDot = b.Len() > 0
			upper = true
		default:
			if pendingDot {
				b.WriteByte('.')
				pendingDot = false
			}
			if upper && 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			upper = false
			b.WriteByte(c)
		}
	}
	return b.String()
}
