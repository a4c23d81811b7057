package sillycode

// EmoteKind defines an emoticon.
type EmoteKind int

const (
	EmoteSmile      EmoteKind = iota // [:)]
	EmoteSad                         // [:(]
	EmoteColonD                      // [:D]
	EmoteColonThree                  // [:3]
	EmoteFearful                     // [D:]
	EmoteSunglasses                  // [B)]
	EmoteCrying                      // [;(]
	EmoteWinking                     // [;)]

	// NumEmoteKinds is the total number of emotes. Should be placed as last const.
	NumEmoteKinds
)

// EmotePathPrefix is the path under which the emoticon images are served.
const EmotePathPrefix = "/static/emoticons/"

var emoteTags = [NumEmoteKinds]string{
	EmoteSmile:      ":)",
	EmoteSad:        ":(",
	EmoteColonD:     ":D",
	EmoteColonThree: ":3",
	EmoteFearful:    "D:",
	EmoteSunglasses: "B)",
	EmoteCrying:     ";(",
	EmoteWinking:    ";)",
}

var emoteNames = [NumEmoteKinds]string{
	EmoteSmile:      "smile",
	EmoteSad:        "sad",
	EmoteColonD:     "colond",
	EmoteColonThree: "colonthree",
	EmoteFearful:    "fearful",
	EmoteSunglasses: "sunglasses",
	EmoteCrying:     "crying",
	EmoteWinking:    "winking",
}

func (e EmoteKind) valid() bool {
	return e >= 0 && e < NumEmoteKinds
}

// Tag returns the sillycode tag of the emote, e.g. ":)" for [EmoteSmile].
func (e EmoteKind) Tag() string {
	if !e.valid() {
		return ""
	}
	return emoteTags[e]
}

// Name returns the image file name of the emote without extension, e.g. "smile".
func (e EmoteKind) Name() string {
	if !e.valid() {
		return ""
	}
	return emoteNames[e]
}

// Path returns the URL path of the emote's image.
func (e EmoteKind) Path() string {
	return EmotePathPrefix + e.Name() + ".png"
}
