package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.IntN(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomTitle generates a random post title.
func RandomTitle() string {
	return RandomString(6) + " " + RandomString(8)
}

// RandomSillycode generates a random post body using a few of the sillycode tags.
func RandomSillycode() string {
	tags := []string{"[b]%s[/b]", "[i]%s[/i]", "[url]https://%s.net[/url]", "[color=#ad77f1]%s[/color]", "%s [:3]"}
	tag := tags[rand.IntN(len(tags))]
	return RandomString(4) + " " + strings.Replace(tag, "%s", RandomString(10), 1)
}
