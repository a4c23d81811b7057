package sillycode

import "io"

// elementType defines the HTML element used for a style.
type elementType uint8

const (
	elementStrong elementType = iota
	elementEm
	elementIns
	elementDel
	elementSpan
	elementAnchor
)

// element is an open HTML element in the renderer's element stack.
//
// Elements are comparable: spans are equal when their colors are, anchors are never
// equal to each other since every anchor has its own link record.
type element struct {
	typ elementType

	// color of an elementSpan.
	color Color

	// link is the index of an elementAnchor's record in the [linkTable].
	link int
}

var styleToElement = [...]elementType{
	StyleBold:          elementStrong,
	StyleItalic:        elementEm,
	StyleUnderline:     elementIns,
	StyleStrikethrough: elementDel,
}

var closingTags = [...]string{
	elementStrong: "</strong>",
	elementEm:     "</em>",
	elementIns:    "</ins>",
	elementDel:    "</del>",
	elementSpan:   "</span>",
	elementAnchor: "</a>",
}

// writeOpen writes the opening tag of the element.
func (e element) writeOpen(sb io.StringWriter, links *linkTable) {
	switch e.typ {
	case elementStrong:
		sb.WriteString("<strong>")
	case elementEm:
		sb.WriteString("<em>")
	case elementIns:
		sb.WriteString("<ins>")
	case elementDel:
		sb.WriteString("<del>")
	case elementSpan:
		sb.WriteString(`<span style="color: `)
		sb.WriteString(e.color.String())
		sb.WriteString(`">`)
	case elementAnchor:
		sb.WriteString(`<a href="`)
		sb.WriteString(links.placeholder(e.link))
		sb.WriteString(`">`)
	}
}

func (e element) writeClose(sb io.StringWriter) {
	sb.WriteString(closingTags[e.typ])
}

// elementStack keeps the open elements in the order they were opened, and writes
// the HTML needed to keep them properly nested.
type elementStack struct {
	v []element
}

func (s *elementStack) contains(e element) bool {
	for _, x := range s.v {
		if x == e {
			return true
		}
	}
	return false
}

// push opens the element and puts it on top of the stack.
func (s *elementStack) push(sb io.StringWriter, links *linkTable, e element) {
	e.writeOpen(sb, links)
	s.v = append(s.v, e)
}

// openAll opens every element, bottom to top.
func (s *elementStack) openAll(sb io.StringWriter, links *linkTable) {
	for _, e := range s.v {
		e.writeOpen(sb, links)
	}
}

// closeAll closes every element, top to bottom. The stack itself is unchanged.
func (s *elementStack) closeAll(sb io.StringWriter) {
	for i := len(s.v) - 1; i >= 0; i-- {
		s.v[i].writeClose(sb)
	}
}

// remove closes the topmost element matching the predicate and drops it from the stack.
//
// Elements opened after the removed one are closed before it and re-opened right after,
// so the HTML stays properly nested. Returns false if nothing matched.
func (s *elementStack) remove(sb io.StringWriter, links *linkTable, match func(element) bool) bool {
	for i := len(s.v) - 1; i >= 0; i-- {
		if !match(s.v[i]) {
			continue
		}

		removed := s.v[i]
		preserved := s.v[i+1:]

		for j := len(preserved) - 1; j >= 0; j-- {
			preserved[j].writeClose(sb)
		}

		removed.writeClose(sb)

		for _, e := range preserved {
			e.writeOpen(sb, links)
		}

		s.v = append(s.v[:i], preserved...)

		return true
	}

	return false
}

func isType(t elementType) func(element) bool {
	return func(e element) bool {
		return e.typ == t
	}
}

func isElement(target element) func(element) bool {
	return func(e element) bool {
		return e == target
	}
}
