package sillycode

import (
	"strconv"
	"strings"
)

// linkRecord collects the href of a single [url] tag.
type linkRecord struct {
	href []byte

	// replacer is written into the output in place of the href, and substituted
	// once the whole input is rendered.
	replacer string

	taken bool

	// size and uses replace href and the rendered placeholders when only sizing.
	size int
	uses int
}

// linkTable owns the link records of one render call.
// Anchors in the element stack refer to the records by index.
type linkTable struct {
	records []linkRecord

	// sizeOnly keeps the href lengths instead of the hrefs, see [RenderSize].
	sizeOnly bool

	// hrefBytes is the number of href bytes the placeholders written so far will expand to.
	hrefBytes int
}

// newLink creates a record and returns its index.
func (t *linkTable) newLink() int {
	id := len(t.records)

	// escaped text never contains a raw '<', so the replacer can't be forged by the input
	t.records = append(t.records, linkRecord{
		replacer: "<§HREF" + strconv.Itoa(id) + "§>",
	})

	return id
}

func (t *linkTable) placeholder(id int) string {
	r := &t.records[id]
	if t.sizeOnly {
		r.uses++
		t.hrefBytes += r.size
	}
	return r.replacer
}

// appendHref appends escaped text to the href of the link.
func (t *linkTable) appendHref(id int, text string) {
	r := &t.records[id]
	if r.taken {
		panic("sillycode: link " + strconv.Itoa(id) + " already taken")
	}

	if t.sizeOnly {
		r.size += len(text)
		t.hrefBytes += len(text) * r.uses
		return
	}

	r.href = append(r.href, text...)
}

// take finalizes the link and returns its replacer and trimmed href.
// Every link must be taken exactly once.
func (t *linkTable) take(id int) (replacer, href string) {
	r := &t.records[id]
	if r.taken {
		panic("sillycode: link " + strconv.Itoa(id) + " already taken")
	}
	r.taken = true

	return r.replacer, strings.TrimSpace(string(r.href))
}

// resolve replaces every link placeholder in the html with the link's href.
func (t *linkTable) resolve(html string) string {
	if len(t.records) == 0 {
		return html
	}

	pairs := make([]string, 0, len(t.records)*2)
	for id := range t.records {
		replacer, href := t.take(id)
		pairs = append(pairs, replacer, href)
	}

	return strings.NewReplacer(pairs...).Replace(html)
}
