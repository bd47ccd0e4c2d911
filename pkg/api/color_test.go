package api

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"", nil},
		{"none", nil},
		{"transparent", color.Transparent},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#1a2b3c", color.NRGBA{0x1a, 0x2b, 0x3c, 0xff}},
		{"#1A2B3C80", color.NRGBA{0x1a, 0x2b, 0x3c, 0x80}},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{" red ", color.RGBA{0xff, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"#abcd", "#ggg", "#", "notacolor"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrUnknownColor, in)
	}
}

func TestRenderOptions(t *testing.T) {
	o := NewRenderOptions()
	assert.Equal(t, DefaultRenderOptions(), o)

	o = NewRenderOptions(Scale(-1), Scale(0))
	assert.Equal(t, 1.0, o.Scale, "non-positive scale is ignored")

	o = NewRenderOptions(Scale(3), Background(color.Black), Transparent())
	assert.Equal(t, 3.0, o.Scale)
	assert.Equal(t, color.Black, o.Background)
	assert.True(t, o.Transparent)

	w, h := o.EffectiveSize(1.1, 2)
	assert.Equal(t, 4, w)
	assert.Equal(t, 6, h)
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err := ParseScene([]byte("width: 1\nheight: 1\n"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scene loaded")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
