package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/handles/core"
)

func TestRun_WritesWebP(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"translate", []string{"-mode", "translate", "-drag", "100,0"}},
		{"rotate", []string{"-mode", "rotate", "-drag", "20,20"}},
		{"scale released", []string{"-mode", "scale", "-drag", "150,0", "-release"}},
		{"perspective", []string{"-camera", "persp", "-supersample", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "shot.webp")
			args := append([]string{"-out", out, "-width", "200", "-height", "150"}, tt.args...)
			require.NoError(t, run(args, io.Discard))

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			require.Greater(t, len(data), 12)
			assert.Equal(t, "RIFF", string(data[0:4]))
			assert.Equal(t, "WEBP", string(data[8:12]))
		})
	}
}

func TestRun_UsesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"mode": "scale", "font_scale": 2}`), 0o644))
	out := filepath.Join(dir, "shot.webp")

	require.NoError(t, run([]string{"-settings", cfg, "-out", out, "-width", "120", "-height", "90"}, io.Discard))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad mode", []string{"-mode", "shear"}, "shear"},
		{"bad drag", []string{"-drag", "10"}, "-drag"},
		{"bad grab", []string{"-grab", "a,b"}, "-grab"},
		{"bad camera", []string{"-camera", "fisheye"}, "fisheye"},
		{"bad size", []string{"-width", "0"}, "image size"},
		{"missing settings", []string{"-settings", filepath.Join(dir, "none.json")}, "settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-out", filepath.Join(dir, "x.webp")}, tt.args...)
			err := run(args, io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseVec2(t *testing.T) {
	v, err := parseVec2(" 12.5, -3")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec2{12.5, -3}, v)

	_, err = parseVec2("1,2,3")
	assert.Error(t, err)
}

func TestDefaultGrab(t *testing.T) {
	cam, err := newCamera("ortho", 800, 600)
	require.NoError(t, err)
	tests := []struct {
		mode gizmo.Mode
		want mgl32.Vec2
	}{
		{gizmo.ModeTranslate, mgl32.Vec2{456, 300}},
		{gizmo.ModeRotate, mgl32.Vec2{456.5685, 243.4315}},
		{gizmo.ModeScale, mgl32.Vec2{400, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := defaultGrab(cam, tt.mode, mgl32.Vec3{})
			assert.True(t, core.Vec2Near(got, tt.want, 1e-3), "got %v", got)
		})
	}
}
