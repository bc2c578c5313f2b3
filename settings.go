package gizmo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// Settings is the JSON configuration of a controller and its snap settings. Settings are only
// read; nothing is written back.
type Settings struct {
	Mode string `json:"mode"`

	ActiveAxisColor *core.Color `json:"active_axis_color,omitempty"`
	PlaneColor      *core.Color `json:"plane_color,omitempty"`
	DottedAxisColor *core.Color `json:"dotted_axis_color,omitempty"`
	TextColor       *core.Color `json:"text_color,omitempty"`

	FontScale       int     `json:"font_scale"`
	UnitSnapSpacing float32 `json:"unit_snap_spacing"`

	// Snap steps of 0 disable snapping; absent steps take the defaults.
	MoveSnap        *[3]float32 `json:"move_snap,omitempty"`
	RotateSnap      *float32    `json:"rotate_snap,omitempty"`
	ScaleSnap       *float32    `json:"scale_snap,omitempty"`
	IncrementalSnap bool        `json:"incremental_snap"`

	Debug bool `json:"debug"`
}

// DefaultSettings mirrors core.DefaultStyle and core.DefaultSnap.
func DefaultSettings() Settings {
	s := Settings{}
	s.Resolve()
	return s
}

// LoadSettings reads a JSON settings file. Missing fields are filled by Resolve.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	if _, err := ParseMode(s.orDefaultMode()); err != nil {
		return Settings{}, fmt.Errorf("settings: %s: %w", path, err)
	}
	s.Resolve()
	return s, nil
}

func (s *Settings) orDefaultMode() string {
	if s.Mode == "" {
		return ModeTranslate.String()
	}
	return s.Mode
}

// Resolve fills every unset field with its default.
func (s *Settings) Resolve() {
	style := core.DefaultStyle()
	snap := core.DefaultSnap()

	s.Mode = s.orDefaultMode()
	if s.ActiveAxisColor == nil {
		s.ActiveAxisColor = &style.ActiveAxisColor
	}
	if s.PlaneColor == nil {
		s.PlaneColor = &style.PlaneColor
	}
	if s.DottedAxisColor == nil {
		s.DottedAxisColor = &style.DottedAxisColor
	}
	if s.TextColor == nil {
		s.TextColor = &style.TextColor
	}
	if s.FontScale <= 0 {
		s.FontScale = style.FontScale
	}
	if s.UnitSnapSpacing <= 0 {
		s.UnitSnapSpacing = style.UnitSnapSpacing
	}
	if s.MoveSnap == nil {
		m := [3]float32(snap.MoveStep)
		s.MoveSnap = &m
	}
	if s.RotateSnap == nil || *s.RotateSnap < 0 {
		r := snap.RotateStep
		s.RotateSnap = &r
	}
	if s.ScaleSnap == nil || *s.ScaleSnap < 0 {
		sc := snap.ScaleStep
		s.ScaleSnap = &sc
	}
}

// Snap builds the snap settings described by s.
func (s Settings) Snap() *core.StaticSnap {
	s.Resolve()
	return &core.StaticSnap{
		MoveStep:    mgl32.Vec3(*s.MoveSnap),
		RotateStep:  *s.RotateSnap,
		ScaleStep:   *s.ScaleSnap,
		Incremental: s.IncrementalSnap,
	}
}

// Apply pushes the mode and style of s into c. It fails while c is dragging.
func (s Settings) Apply(c *Controller) error {
	s.Resolve()
	mode, err := ParseMode(s.Mode)
	if err != nil {
		return err
	}
	if err := c.SetMode(mode); err != nil {
		return fmt.Errorf("failed to apply settings: %w", err)
	}
	c.SetActiveAxisColor(*s.ActiveAxisColor)
	c.SetPlaneColor(*s.PlaneColor)
	c.SetDottedAxisColor(*s.DottedAxisColor)
	c.SetTextColor(*s.TextColor)
	c.SetFontScale(s.FontScale)
	c.SetUnitSnapSpacing(s.UnitSnapSpacing)
	c.log.SetDebug(s.Debug)
	return nil
}
