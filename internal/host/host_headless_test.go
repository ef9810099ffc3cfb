//go:build headless

package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadlessHostOpenAndBlit(t *testing.T) {
	var h HeadlessHost
	require.NoError(t, h.Open(320, 256, "test"))
	require.True(t, h.IsOpen())

	frame := []byte{1, 2, 3, 4}
	require.NoError(t, h.Blit(frame))
	require.Equal(t, frame, h.LastFrame)

	require.NoError(t, h.Close())
	require.False(t, h.IsOpen())
}

func TestHeadlessHostInjectedKeys(t *testing.T) {
	var h HeadlessHost
	h.InjectedF1 = true
	border := uint8(5)
	h.InjectedBorder = &border

	require.NoError(t, h.Pump())
	require.True(t, h.F1Pressed())
	require.False(t, h.F5Pressed())
	color, ok := h.BorderKey()
	require.True(t, ok)
	require.Equal(t, uint8(5), color)

	// A second Pump with nothing injected clears the one-shot edges.
	require.NoError(t, h.Pump())
	require.False(t, h.F1Pressed())
	_, ok = h.BorderKey()
	require.False(t, ok)
}
