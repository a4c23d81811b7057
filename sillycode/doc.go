// Package sillycode parses and renders sillycode, the bracket-tag markup used in post bodies.
//
// # Syntax
//
//   - Styles: [b]bold[/b], [i]italic[/i], [u]underline[/u], [s]strikethrough[/s].
//   - Links: [url]https://example.com[/url]. The link destination is the text inside the tag.
//   - Colors: [color=#ad77f1]purple[/color]. Colors nest, the closing tag ends the innermost one.
//   - Emotes: [:)] [:(] [:D] [:3] [D:] [B)] [;(] [;)].
//   - Escapes: a backslash makes the next character plain text, e.g. \[b] is not a tag.
//
// # Behaviour
//
// Parsing never fails. Anything that does not form a known tag stays plain text, and tags
// may be left unclosed or closed out of order. [Parse] produces a flat list of [Part] values
// and [Render] rebuilds the nesting, emitting well formed HTML with one <div> per line.
//
// Each call owns all of its state, so the functions are safe to call concurrently.
package sillycode
