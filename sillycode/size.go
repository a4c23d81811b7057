package sillycode

// perLineSlack covers what post-processing may add to a single line.
const perLineSlack = len("&nbsp;") + len(lineBreak)

// RenderSize returns an upper bound of len(Render(parts, isEditor)) without building the HTML.
//
// The output of [Render] is not linear in its input: every newline reopens all open
// elements, a tag closed out of order reopens the ones above it, and every reopened
// link repeats its whole href. Callers that render untrusted input should check
// this bound first.
//
// Sizing stops as soon as the bound exceeds limit, so a hostile input is rejected
// early. A negative limit sizes the whole input.
func RenderSize(parts []Part, isEditor bool, limit int) int {
	var w byteCounter

	r := renderer{
		out:      &w,
		isEditor: isEditor,
		links:    linkTable{sizeOnly: true},
	}

	lines := 1
	size := func() int {
		return w.n + r.links.hrefBytes + lines*perLineSlack
	}

	r.out.WriteString(lineStart)

	for _, p := range parts {
		if p.Type == PartNewline {
			lines++
		}

		r.onPart(p)

		if limit >= 0 && size() > limit {
			return size()
		}
	}

	r.elements.closeAll(r.out)
	r.out.WriteString(lineEnd)

	return size()
}

// byteCounter counts the bytes written to it.
type byteCounter struct {
	n int
}

func (c *byteCounter) WriteString(s string) (int, error) {
	c.n += len(s)
	return len(s), nil
}
