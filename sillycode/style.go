package sillycode

// StyleKind defines a text formatting option.
type StyleKind int

const (
	// StyleBold is [b], rendered as <strong>.
	StyleBold StyleKind = iota

	// StyleItalic is [i], rendered as <em>.
	StyleItalic

	// StyleUnderline is [u], rendered as <ins>.
	StyleUnderline

	// StyleStrikethrough is [s], rendered as <del>.
	StyleStrikethrough

	// StyleLink is [url], rendered as <a href="...">.
	StyleLink

	// NumStyleKinds is the total number of styles. Should be placed as last const.
	NumStyleKinds
)

var styleTags = [NumStyleKinds]string{
	StyleBold:          "b",
	StyleItalic:        "i",
	StyleUnderline:     "u",
	StyleStrikethrough: "s",
	StyleLink:          "url",
}

// Tag returns the sillycode tag name of the style, e.g. "b" for [StyleBold].
func (s StyleKind) Tag() string {
	if s < 0 || s >= NumStyleKinds {
		return ""
	}
	return styleTags[s]
}
