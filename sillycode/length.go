package sillycode

import "unicode/utf8"

// Length returns the number of visible units in the Parts: characters of the text, counted as
// Unicode code points, plus one per newline and per emote. Tags and escapes are not counted.
func Length(parts []Part) int {
	n := 0
	for _, p := range parts {
		switch p.Type {
		case PartText:
			n += utf8.RuneCountInString(p.Text)
		case PartNewline, PartEmote:
			n++
		}
	}
	return n
}
