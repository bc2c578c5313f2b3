package gizmo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/handles/core"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gizmo.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `{
		"mode": "rotate",
		"plane_color": [1, 0, 0, 0.5],
		"font_scale": 3,
		"move_snap": [0.5, 0.5, 0.25],
		"incremental_snap": true
	}`)
	s, err := LoadSettings(path)
	require.NoError(t, err)

	style := core.DefaultStyle()
	assert.Equal(t, "rotate", s.Mode)
	assert.Equal(t, core.Color{1, 0, 0, 0.5}, *s.PlaneColor)
	assert.Equal(t, style.ActiveAxisColor, *s.ActiveAxisColor)
	assert.Equal(t, 3, s.FontScale)
	assert.Equal(t, style.UnitSnapSpacing, s.UnitSnapSpacing)

	snap := s.Snap()
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.25}, snap.Move())
	assert.Equal(t, float32(15), snap.Rotate())
	assert.True(t, snap.IncrementalSnapActive())
}

func TestLoadSettings_ZeroSnapDisables(t *testing.T) {
	s, err := LoadSettings(writeSettings(t, `{"rotate_snap": 0, "scale_snap": 0, "move_snap": [0, 0, 0]}`))
	require.NoError(t, err)

	snap := s.Snap()
	assert.Equal(t, mgl32.Vec3{}, snap.Move())
	assert.Zero(t, snap.Rotate())
	assert.Zero(t, snap.Scale())

	s, err = LoadSettings(writeSettings(t, `{"rotate_snap": 5}`))
	require.NoError(t, err)
	assert.Equal(t, float32(5), s.Snap().Rotate())
	assert.Equal(t, core.DefaultSnap().Scale(), s.Snap().Scale())
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	_, err = LoadSettings(writeSettings(t, `{"mode": `))
	assert.Error(t, err)

	_, err = LoadSettings(writeSettings(t, `{"mode": "shear"}`))
	assert.True(t, errors.Is(err, ErrUnknownMode), "got %v", err)
}

func TestDefaultSettingsMatchStyle(t *testing.T) {
	s := DefaultSettings()
	style := core.DefaultStyle()
	assert.Equal(t, "translate", s.Mode)
	assert.Equal(t, style.PlaneColor, *s.PlaneColor)
	assert.Equal(t, style.TextColor, *s.TextColor)
	assert.Equal(t, style.FontScale, s.FontScale)
	assert.Equal(t, core.DefaultSnap(), s.Snap())
}

func TestSettingsApply(t *testing.T) {
	h := newHost()
	s := DefaultSettings()
	s.Mode = "scale"
	red := core.Color{1, 0, 0, 1}
	s.ActiveAxisColor = &red
	s.FontScale = 4
	require.NoError(t, s.Apply(h.c))

	assert.Equal(t, ModeScale, h.c.Mode())
	assert.Equal(t, red, h.c.Style().ActiveAxisColor)
	assert.Equal(t, 4, h.c.Style().FontScale)

	h2 := newHost()
	h2.grab(t, mgl32.Vec2{470, 300})
	err := s.Apply(h2.c)
	assert.True(t, errors.Is(err, ErrDragInProgress), "got %v", err)
}
