// Command gizmoshot plays a scripted drag against a transform gizmo and writes the last frame,
// feedback included, as a WebP image.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/snapshot"
)

type options struct {
	settings    string
	out         string
	mode        string
	camera      string
	width       int
	height      int
	supersample int
	grab        string
	drag        string
	steps       int
	release     bool
	debug       bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gizmoshot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.settings, "settings", "", "Path to settings JSON (default: built-in settings)")
	fs.StringVar(&o.out, "out", "gizmo.webp", "Output WebP file")
	fs.StringVar(&o.mode, "mode", "", "translate, rotate or scale (overrides settings)")
	fs.StringVar(&o.camera, "camera", "ortho", "ortho (front view) or persp (three-quarter view)")
	fs.IntVar(&o.width, "width", 800, "Image width in pixels")
	fs.IntVar(&o.height, "height", 600, "Image height in pixels")
	fs.IntVar(&o.supersample, "supersample", 2, "Supersampling factor")
	fs.StringVar(&o.grab, "grab", "", "Screen point x,y to press (default: a handle of the mode)")
	fs.StringVar(&o.drag, "drag", "120,0", "Mouse travel dx,dy in pixels")
	fs.IntVar(&o.steps, "steps", 4, "Number of drag events")
	fs.BoolVar(&o.release, "release", false, "Release the mouse before the snapshot")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("invalid image size %dx%d", o.width, o.height)
	}
	o.steps = max(o.steps, 1)
	return o, nil
}

// parseVec2 reads "x,y".
func parseVec2(s string) (mgl32.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl32.Vec2{}, fmt.Errorf("expected x,y, got %q", s)
	}
	var v mgl32.Vec2
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec2{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func newCamera(kind string, width, height int) (*core.Camera, error) {
	w, h := float32(width), float32(height)
	switch kind {
	case "ortho":
		return core.NewOrthographicCamera(w, h, 3, mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}), nil
	case "persp":
		cam := core.NewCamera(w, h)
		cam.Pos = mgl32.Vec3{4, 3, 6}
		cam.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		return cam, nil
	}
	return nil, fmt.Errorf("unknown camera %q", kind)
}

// defaultGrab is a screen point on a handle of mode for a gizmo at pos.
func defaultGrab(cam core.CameraProjector, mode gizmo.Mode, pos mgl32.Vec3) mgl32.Vec2 {
	size := cam.HandleSize(pos)
	switch mode {
	case gizmo.ModeRotate:
		dir := cam.Right().Add(cam.Up()).Normalize()
		return cam.WorldToScreen(pos.Add(dir.Mul(size)))
	case gizmo.ModeScale:
		return cam.WorldToScreen(pos)
	}
	return cam.WorldToScreen(pos.Add(mgl32.Vec3{1, 0, 0}.Mul(size * 0.7)))
}

func loadSettings(o options) (gizmo.Settings, error) {
	s := gizmo.DefaultSettings()
	if o.settings != "" {
		var err error
		if s, err = gizmo.LoadSettings(o.settings); err != nil {
			return s, err
		}
	}
	if o.mode != "" {
		if _, err := gizmo.ParseMode(o.mode); err != nil {
			return s, err
		}
		s.Mode = o.mode
	}
	if o.debug {
		s.Debug = true
	}
	return s, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	settings, err := loadSettings(o)
	if err != nil {
		return err
	}
	travel, err := parseVec2(o.drag)
	if err != nil {
		return fmt.Errorf("-drag: %w", err)
	}
	cam, err := newCamera(o.camera, o.width, o.height)
	if err != nil {
		return err
	}

	log := core.NewDefaultLogger("gizmoshot", settings.Debug)
	list := core.NewDrawList()
	svc := core.Services{Camera: cam, Draw: list, Snap: settings.Snap()}
	sink := gizmo.CommitFunc(func(c gizmo.Change) {
		if c.Phase != gizmo.PhaseDrag {
			log.Infof("%s %s: %v", c.Mode, c.Phase, c.Value)
		}
	})
	ctrl := gizmo.NewController(svc, gizmo.WithLogger(log), gizmo.WithSink(sink))
	if err := settings.Apply(ctrl); err != nil {
		return err
	}

	target := core.NewTransform()
	grab := defaultGrab(cam, ctrl.Mode(), target.Position)
	if o.grab != "" {
		if grab, err = parseVec2(o.grab); err != nil {
			return fmt.Errorf("-grab: %w", err)
		}
	}

	send := func(evt core.Event) gizmo.Result {
		res := ctrl.Handle(&evt, target)
		target = res.Transform
		return res
	}
	send(core.Event{Type: core.EventLayout, Mouse: grab})
	if res := send(core.Event{Type: core.EventMouseDown, Mouse: grab, Button: core.MouseLeft}); !res.Dragging {
		log.Warnf("no %s handle at %v, drawing the idle gizmo", ctrl.Mode(), grab)
	}
	mouse := grab
	step := travel.Mul(1 / float32(o.steps))
	for i := 0; i < o.steps; i++ {
		mouse = mouse.Add(step)
		send(core.Event{Type: core.EventMouseDrag, Mouse: mouse, Delta: step})
	}
	if o.release {
		send(core.Event{Type: core.EventMouseUp, Mouse: mouse, Button: core.MouseLeft})
	}

	list.Reset()
	send(core.Event{Type: core.EventRepaint, Mouse: mouse})
	raster := snapshot.New(cam, o.width, o.height, o.supersample)
	raster.Fill(core.Color{0.18, 0.18, 0.2, 1})
	list.Replay(raster)
	log.Debugf("replayed %d primitives", len(list.Items))

	if err := snapshot.WriteWebP(o.out, raster.Image()); err != nil {
		return err
	}
	log.Infof("wrote %s (%s, position %v, euler %v, scale %v)",
		o.out, ctrl.Mode(), target.Position, target.EulerAngles(), target.Scale)
	return nil
}
