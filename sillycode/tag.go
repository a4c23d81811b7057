package sillycode

import "strings"

const (
	// MaxTagBodyLen is the max number of bytes between '[' and ']' that can form a tag.
	MaxTagBodyLen = 32

	colorTagPrefix = "color="
	colorCloseTag  = "/color"
)

// parseTag classifies the text between '[' and ']'.
// Styles are tried first, then emotes, then colors. Returns false if the body is not a tag.
func parseTag(body string) (Part, bool) {
	if len(body) == 0 || len(body) > MaxTagBodyLen {
		return Part{}, false
	}

	if p, ok := parseStyleTag(body); ok {
		return p, true
	}

	if p, ok := parseEmoteTag(body); ok {
		return p, true
	}

	return parseColorTag(body)
}

// parseStyleTag parses bodies like "b" or "/url".
func parseStyleTag(body string) (Part, bool) {
	name, closing := strings.CutPrefix(body, "/")

	for s := StyleKind(0); s < NumStyleKinds; s++ {
		if name == s.Tag() {
			return NewStyle(s, !closing), true
		}
	}

	return Part{}, false
}

// parseEmoteTag parses bodies like ":)".
func parseEmoteTag(body string) (Part, bool) {
	for e := EmoteKind(0); e < NumEmoteKinds; e++ {
		if body == e.Tag() {
			return NewEmote(e), true
		}
	}

	return Part{}, false
}

// parseColorTag parses bodies like "color=#ad77f1" or "/color".
func parseColorTag(body string) (Part, bool) {
	if body == colorCloseTag {
		return NewColor(Color{}, false), true
	}

	hex, ok := strings.CutPrefix(body, colorTagPrefix)
	if !ok {
		return Part{}, false
	}

	c, err := ParseColor(hex)
	if err != nil {
		return Part{}, false
	}

	return NewColor(c, true), true
}
