package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, float32(0), Lerp(0, 1, 0))
	require.Equal(t, float32(1), Lerp(0, 1, 1))
	require.Equal(t, float32(15), Lerp(10, 20, 0.5))
}

func TestClamp(t *testing.T) {
	require.Equal(t, float32(0), Clamp(-2, 0, 1))
	require.Equal(t, float32(1), Clamp(3, 0, 1))
	require.Equal(t, float32(0.25), Clamp(0.25, 0, 1))
}
