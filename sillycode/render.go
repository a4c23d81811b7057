package sillycode

import (
	"io"
	"strings"
)

const (
	lineStart = "<div>"
	lineEnd   = "</div>"
	lineBreak = "<br>"

	metaClass  = "sillycode-meta"
	emoteClass = "sillycode-emote"
)

// renderer holds everything a single [Render] call needs.
type renderer struct {
	html     strings.Builder
	out      io.StringWriter
	elements elementStack
	links    linkTable

	// isEditor enables the "meta" output: tags and backslashes shown next to their effect.
	isEditor bool
}

// writeMeta writes sillycode markup wrapped in a span, only in editor mode.
// The markup must not contain user text.
func (r *renderer) writeMeta(markup string) {
	if !r.isEditor {
		return
	}
	r.out.WriteString(`<span class="` + metaClass + `">`)
	r.out.WriteString(markup)
	r.out.WriteString("</span>")
}

func (r *renderer) push(e element) {
	r.elements.push(r.out, &r.links, e)
}

func (r *renderer) remove(match func(element) bool) {
	r.elements.remove(r.out, &r.links, match)
}

// apply opens the element unless it's already open, or closes the topmost equal one.
func (r *renderer) apply(e element, enable bool) {
	if !enable {
		r.remove(isElement(e))
		return
	}

	if !r.elements.contains(e) {
		r.push(e)
	}
}

func (r *renderer) onText(text string) {
	escaped := escapeHTML(text)

	r.out.WriteString(escaped)

	// every open link gets the text, including the outer links of nested ones
	for _, e := range r.elements.v {
		if e.typ == elementAnchor {
			r.links.appendHref(e.link, escaped)
		}
	}
}

func (r *renderer) onEscape() {
	// the backslash is already consumed by the parser
	r.writeMeta(`\`)
}

func (r *renderer) onNewline() {
	r.elements.closeAll(r.out)
	r.out.WriteString(lineEnd + lineStart)
	r.elements.openAll(r.out, &r.links)
}

func (r *renderer) onStyle(style StyleKind, enable bool) {
	if style == StyleLink {
		r.onLink(enable)
		return
	}

	if style < 0 || int(style) >= len(styleToElement) {
		return
	}

	if enable {
		r.writeMeta("[" + style.Tag() + "]")
	}

	r.apply(element{typ: styleToElement[style]}, enable)

	if !enable {
		r.writeMeta("[/" + style.Tag() + "]")
	}
}

// onLink handles [url] tags. Links are never merged, each one gets its own anchor and href.
func (r *renderer) onLink(enable bool) {
	if enable {
		r.writeMeta("[url]")
		r.push(element{typ: elementAnchor, link: r.links.newLink()})
		return
	}

	r.remove(isType(elementAnchor))
	r.writeMeta("[/url]")
}

func (r *renderer) onColor(color Color, enable bool) {
	if enable {
		r.writeMeta("[" + colorTagPrefix + color.String() + "]")
		r.apply(element{typ: elementSpan, color: color}, true)
		return
	}

	r.remove(isType(elementSpan))
	r.writeMeta("[" + colorCloseTag + "]")
}

func (r *renderer) onEmote(emote EmoteKind) {
	if !emote.valid() {
		return
	}

	path := emote.Path()

	if r.isEditor {
		r.out.WriteString(`<span class="` + emoteClass + `" style="background-image: url(` + path + `)">`)
		r.out.WriteString(escapeHTML("[" + emote.Tag() + "]"))
		r.out.WriteString("</span>")
		return
	}

	r.out.WriteString(`<img class="` + emoteClass + `" src="` + path + `" alt="` + emote.Name() + `">`)
}

func (r *renderer) onPart(p Part) {
	switch p.Type {
	case PartText:
		r.onText(p.Text)
	case PartEscape:
		r.onEscape()
	case PartNewline:
		r.onNewline()
	case PartStyle:
		r.onStyle(p.Style, p.Enable)
	case PartColor:
		r.onColor(p.Color, p.Enable)
	case PartEmote:
		r.onEmote(p.Emote)
	}
}

func (r *renderer) render(parts []Part) string {
	r.out = &r.html
	r.out.WriteString(lineStart)

	for _, p := range parts {
		r.onPart(p)
	}

	r.elements.closeAll(r.out)
	r.out.WriteString(lineEnd)

	return postprocess(r.links.resolve(r.html.String()))
}

// postprocess keeps significant whitespace and blank lines visible.
func postprocess(html string) string {
	html = strings.ReplaceAll(html, lineStart+" ", lineStart+"&nbsp;")
	html = strings.ReplaceAll(html, " "+lineEnd, " "+lineBreak+lineEnd)
	html = strings.ReplaceAll(html, lineStart+lineEnd, lineStart+lineBreak+lineEnd)
	return html
}

// Render renders the Parts as HTML, one <div> per line.
//
// Tags closed out of order, unclosed tags and unexpected closing tags are all fine:
// the output is always properly nested. All text is HTML-escaped.
//
// With isEditor set, the markup itself is shown too: tags and backslashes are wrapped
// in <span class="sillycode-meta"> and emotes are rendered as labeled previews.
func Render(parts []Part, isEditor bool) string {
	r := renderer{isEditor: isEditor}
	return r.render(parts)
}

// RenderString parses and renders the markup.
func RenderString(input string, isEditor bool) string {
	return Render(Parse(input), isEditor)
}
