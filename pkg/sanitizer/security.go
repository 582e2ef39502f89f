package sanitizer

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML special characters with entities. Unlike
// html.EscapeString it also escapes slashes, backslashes and backticks.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
