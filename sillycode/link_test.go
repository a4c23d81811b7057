package sillycode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkTable_Resolve(t *testing.T) {
	var links linkTable

	outer := links.newLink()
	inner := links.newLink()

	links.appendHref(outer, "  see ")
	links.appendHref(outer, "https://example.com ")
	links.appendHref(inner, "https://example.com ")

	html := `<a href="` + links.placeholder(outer) + `"><a href="` + links.placeholder(inner) + `">`

	require.Equal(t,
		`<a href="see https://example.com"><a href="https://example.com">`,
		links.resolve(html),
	)
}

func TestLinkTable_ManyLinks(t *testing.T) {
	var links linkTable

	var html string
	for i := 0; i < 12; i++ {
		id := links.newLink()
		links.appendHref(id, string(rune('a'+i)))
		html += links.placeholder(id) + ";"
	}

	// <§HREF1§> must not match the start of <§HREF10§>
	require.Equal(t, "a;b;c;d;e;f;g;h;i;j;k;l;", links.resolve(html))
}

func TestLinkTable_NoLinks(t *testing.T) {
	var links linkTable
	require.Equal(t, "<div></div>", links.resolve("<div></div>"))
}

func TestLinkTable_TakeTwicePanics(t *testing.T) {
	var links linkTable

	id := links.newLink()
	_, _ = links.take(id)

	require.Panics(t, func() { links.take(id) })
	require.Panics(t, func() { links.appendHref(id, "late") })
}

func TestLinkTable_SizeOnly(t *testing.T) {
	links := linkTable{sizeOnly: true}
	id := links.newLink()

	links.placeholder(id)
	links.appendHref(id, "abc")
	require.Equal(t, 3, links.hrefBytes)

	// reopened anchor repeats the href, including text appended later
	links.placeholder(id)
	require.Equal(t, 6, links.hrefBytes)

	links.appendHref(id, "de")
	require.Equal(t, 10, links.hrefBytes)
	require.Empty(t, links.records[id].href)
}
