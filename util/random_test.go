package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := RandomInt(1, 3)
		require.GreaterOrEqual(t, n, int64(1))
		require.LessOrEqual(t, n, int64(3))
	}
}

func TestRandomString(t *testing.T) {
	s := RandomString(12)
	require.Len(t, s, 12)
	for _, c := range s {
		require.Contains(t, alphabet, string(c))
	}
}
