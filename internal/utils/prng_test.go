package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)

	for i := 0; i < 10; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestChoose(t *testing.T) {
	s := NewPRNGService(7)
	items := []string{"sand", "tide", "crab"}

	for i := 0; i < 20; i++ {
		require.Contains(t, items, s.Choose(items))
	}
	require.Empty(t, s.Choose(nil))
}
