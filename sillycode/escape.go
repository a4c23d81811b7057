package sillycode

import "strings"

// escapeHTML escapes text so it can be safely used both as HTML content and inside
// double-quoted attributes.
var escapeHTML = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
).Replace
