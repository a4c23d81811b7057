package sillycode

import (
	"bytes"
	"unicode/utf8"
)

const (
	symbolEscape   = '\\'
	symbolTagStart = '['
	symbolTagEnd   = ']'
	symbolNewline  = '\n'
)

// parserState holds everything a single [Parse] call needs.
type parserState struct {
	// parts is the output.
	parts []Part

	// buf collects plain text until it is flushed as a [PartText].
	// A pending tag is also kept here until its ']' shows up.
	buf []byte

	// escape is true if the previous character was an unescaped backslash.
	escape bool
}

func (s *parserState) emit(p Part) {
	s.parts = append(s.parts, p)
}

// flush emits the buffer as a text Part, if it's not empty.
func (s *parserState) flush() {
	if len(s.buf) == 0 {
		return
	}
	s.emit(NewText(string(s.buf)))
	s.buf = s.buf[:0]
}

func (s *parserState) lastIsEscape() bool {
	n := len(s.parts)
	return n > 0 && s.parts[n-1].Type == PartEscape
}

// tag tries to close the tag started by the last '[' in the buffer.
// The rightmost '[' is used, so in "[b[url]" only "[url]" is a tag.
// Returns true if the tag was recognized and emitted.
func (s *parserState) tag() bool {
	idx := bytes.LastIndexByte(s.buf, symbolTagStart)
	if idx < 0 {
		return false
	}

	// the '[' was escaped
	if idx == 0 && s.lastIsEscape() {
		return false
	}

	part, ok := parseTag(string(s.buf[idx+1:]))
	if !ok {
		return false
	}

	s.buf = s.buf[:idx]
	s.flush()
	s.emit(part)

	return true
}

// Parse splits sillycode markup into a list of Parts.
//
// Parse never fails: unknown tags, malformed tags and stray brackets stay plain text.
func Parse(input string) []Part {
	s := parserState{
		parts: make([]Part, 0, len(input)/8+1),
		buf:   make([]byte, 0, min(len(input), 64)),
	}

	for _, r := range input {
		if !s.escape {
			if r == symbolEscape {
				s.escape = true
				s.flush()
				s.emit(NewEscape())
				continue
			}

			if r == symbolTagEnd && s.tag() {
				continue
			}
		}

		// escaping affects only the one character after the backslash
		s.escape = false

		// escaped newlines still break the line
		if r == symbolNewline {
			s.flush()
			s.emit(NewNewline())
			continue
		}

		s.buf = utf8.AppendRune(s.buf, r)
	}

	s.flush()

	return s.parts
}
