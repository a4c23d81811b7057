package sillycode

import "strings"

// PartType defines the kind of a [Part], e.g. text, newline, style toggle, etc.
type PartType int

const (
	// PartText is plain text content.
	PartText PartType = iota

	// PartEscape is a backslash which turned the next character into plain text.
	// The backslash itself is not part of any text.
	PartEscape

	// PartNewline is a line break.
	PartNewline

	// PartStyle enables or disables a [StyleKind]. Each style is independent of the others.
	PartStyle

	// PartColor enables or disables a color scope. Color scopes act as a stack.
	PartColor

	// PartEmote is an emoticon image.
	PartEmote

	// NumPartTypes is the total number of Part types. Should be placed as last const.
	NumPartTypes
)

var partTypeToString = [NumPartTypes]string{
	PartText:    "text",
	PartEscape:  "escape",
	PartNewline: "newline",
	PartStyle:   "style",
	PartColor:   "color",
	PartEmote:   "emote",
}

func (t PartType) String() string {
	if t < 0 || t >= NumPartTypes {
		return "unknown"
	}
	return partTypeToString[t]
}

// Part is a single element of parsed sillycode markup.
//
// Parts never refer to each other: the nesting of styles is implicit in the order
// of the enable and disable toggles and is rebuilt only during rendering.
//
// Part is comparable, two Parts are equal when all of their fields are equal.
type Part struct {
	// Type defines which of the fields below are meaningful.
	Type PartType

	// Text is the plain text for [PartText].
	Text string

	// Style is the toggled style for [PartStyle].
	Style StyleKind

	// Color is the color for an enabling [PartColor]. Disabling parts carry the zero Color.
	Color Color

	// Emote is the emoticon for [PartEmote].
	Emote EmoteKind

	// Enable tells whether a [PartStyle] or a [PartColor] opens or closes its scope.
	Enable bool
}

func NewText(text string) Part {
	return Part{Type: PartText, Text: text}
}

func NewEscape() Part {
	return Part{Type: PartEscape}
}

func NewNewline() Part {
	return Part{Type: PartNewline}
}

func NewStyle(style StyleKind, enable bool) Part {
	return Part{Type: PartStyle, Style: style, Enable: enable}
}

// NewColor creates a color toggle. The color of a disabling toggle is irrelevant and
// is reset to the zero value, so that equal toggles compare equal.
func NewColor(color Color, enable bool) Part {
	if !enable {
		color = Color{}
	}
	return Part{Type: PartColor, Color: color, Enable: enable}
}

func NewEmote(emote EmoteKind) Part {
	return Part{Type: PartEmote, Emote: emote}
}

// String formats the Part back to sillycode markup.
func (p Part) String() string {
	switch p.Type {
	case PartText:
		return p.Text

	case PartEscape:
		return `\`

	case PartNewline:
		return "\n"

	case PartStyle:
		if p.Enable {
			return "[" + p.Style.Tag() + "]"
		}
		return "[/" + p.Style.Tag() + "]"

	case PartColor:
		if p.Enable {
			return "[" + colorTagPrefix + p.Color.String() + "]"
		}
		return "[" + colorCloseTag + "]"

	case PartEmote:
		return "[" + p.Emote.Tag() + "]"
	}

	return ""
}

// Format formats the list of Parts back to sillycode markup.
//
// Formatting the result of [Parse] gives back the original input, except that color
// values are always written in lowercase.
func Format(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.String())
	}
	return sb.String()
}
