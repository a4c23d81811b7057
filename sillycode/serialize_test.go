package sillycode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	parts := Parse("[b]hi[/b] [color=#A834CF]x[/color]\n\\[:)]")

	out, err := json.Marshal(Serialize(parts))
	require.NoError(t, err)

	want := `[` +
		`{"type":"style","style":"b","enable":true},` +
		`{"type":"text","text":"hi"},` +
		`{"type":"style","style":"b","enable":false},` +
		`{"type":"text","text":" "},` +
		`{"type":"color","color":"#a834cf","enable":true},` +
		`{"type":"text","text":"x"},` +
		`{"type":"color","enable":false},` +
		`{"type":"newline"},` +
		`{"type":"escape"},` +
		`{"type":"text","text":"[:)]"}` +
		`]`

	require.JSONEq(t, want, string(out))
}

func TestSerialize_Emote(t *testing.T) {
	got := Serialize([]Part{NewEmote(EmoteSunglasses)})
	require.Equal(t, []SerializablePart{{Type: "emote", Emote: "sunglasses"}}, got)
}

func TestSerialize_Empty(t *testing.T) {
	require.Empty(t, Serialize(nil))
}

func TestKinds(t *testing.T) {
	for s := StyleKind(0); s < NumStyleKinds; s++ {
		require.NotEmpty(t, s.Tag())
	}
	require.Empty(t, NumStyleKinds.Tag())

	seen := make(map[string]bool)
	for e := EmoteKind(0); e < NumEmoteKinds; e++ {
		require.False(t, seen[e.Tag()], "duplicate emote tag %q", e.Tag())
		seen[e.Tag()] = true
		require.Equal(t, "/static/emoticons/"+e.Name()+".png", e.Path())
	}
	require.Empty(t, NumEmoteKinds.Name())

	require.Equal(t, "unknown", NumPartTypes.String())
}
