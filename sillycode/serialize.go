package sillycode

// SerializablePart is a JSON-friendly view of a [Part].
// Only the fields meaningful for the part's type are set.
type SerializablePart struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Style  string `json:"style,omitempty"`
	Color  string `json:"color,omitempty"`
	Emote  string `json:"emote,omitempty"`
	Enable *bool  `json:"enable,omitempty"`
}

// Serialize converts the Parts to their JSON-friendly form.
// Styles are named by their tags, emotes by their image names and colors are "#rrggbb".
func Serialize(parts []Part) []SerializablePart {
	out := make([]SerializablePart, len(parts))

	for i, p := range parts {
		sp := SerializablePart{Type: p.Type.String()}

		switch p.Type {
		case PartText:
			sp.Text = p.Text

		case PartStyle:
			sp.Style = p.Style.Tag()
			sp.Enable = boolPtr(p.Enable)

		case PartColor:
			if p.Enable {
				sp.Color = p.Color.String()
			}
			sp.Enable = boolPtr(p.Enable)

		case PartEmote:
			sp.Emote = p.Emote.Name()
		}

		out[i] = sp
	}

	return out
}

func boolPtr(b bool) *bool {
	return &b
}
