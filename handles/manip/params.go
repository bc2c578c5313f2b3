package manip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// PositionRole selects position sub-handles; bit i is the role at PositionIDs.At(i).
type PositionRole uint8

const (
	PositionX PositionRole = 1 << iota
	PositionY
	PositionZ
	PositionXY
	PositionYZ
	PositionXZ
	PositionXYZ

	PositionNone PositionRole = 0
	PositionAll  PositionRole = 0x7f
)

// PositionParam configures a PositionHandle. Sizes and offsets are in handle-size units.
type PositionParam struct {
	Handles          PositionRole
	AxisOffset       mgl32.Vec3
	AxisSize         mgl32.Vec3
	PlaneOffset      mgl32.Vec3
	PlaneSize        mgl32.Vec3
	AxesOrientation  core.Orientation
	PlaneOrientation core.Orientation
}

func DefaultPositionParam() PositionParam {
	return PositionParam{
		Handles:          PositionX | PositionY | PositionZ | PositionXY | PositionXZ | PositionYZ,
		AxisSize:         mgl32.Vec3{1, 1, 1},
		PlaneSize:        mgl32.Vec3{0.25, 0.25, 0.25},
		AxesOrientation:  core.OrientationSigned,
		PlaneOrientation: core.OrientationCamera,
	}
}

// DefaultFreeMoveParam shows the axes and the free-move center instead of the planes.
func DefaultFreeMoveParam() PositionParam {
	p := DefaultPositionParam()
	p.Handles = PositionX | PositionY | PositionZ | PositionXYZ
	p.PlaneOrientation = core.OrientationSigned
	return p
}

func (p PositionParam) ShouldShow(i int) bool {
	return p.Handles&(1<<i) != 0
}

// RotationRole selects rotation sub-handles; bit i is the role at RotationIDs.At(i).
type RotationRole uint8

const (
	RotationX RotationRole = 1 << iota
	RotationY
	RotationZ
	RotationCameraAxis
	RotationXYZ

	RotationAll RotationRole = 0x1f
)

type RotationParam struct {
	Handles        RotationRole
	AxisSize       mgl32.Vec3
	XYZSize        float32
	CameraAxisSize float32
	EnableRayDrag  bool
	// DisplayXYZCircle outlines the free-rotation sphere.
	DisplayXYZCircle bool
}

func DefaultRotationParam() RotationParam {
	return RotationParam{
		Handles:          RotationAll,
		AxisSize:         mgl32.Vec3{1, 1, 1},
		XYZSize:          1,
		CameraAxisSize:   1.1,
		EnableRayDrag:    true,
		DisplayXYZCircle: true,
	}
}

func (p RotationParam) ShouldShow(i int) bool {
	return p.Handles&(1<<i) != 0
}

// ScaleRole selects scale sub-handles; bit i is the role at ScaleIDs.At(i).
type ScaleRole uint8

const (
	ScaleX ScaleRole = 1 << iota
	ScaleY
	ScaleZ
	ScaleXYZ

	ScaleAll ScaleRole = 0x0f
)

type ScaleParam struct {
	Handles       ScaleRole
	AxisOffset    mgl32.Vec3
	AxisSize      mgl32.Vec3
	AxisLineScale mgl32.Vec3
	XYZSize       float32
	Orientation   core.Orientation
	// ConstrainProportions makes every axis scale all three components together.
	ConstrainProportions bool
}

func DefaultScaleParam() ScaleParam {
	return ScaleParam{
		Handles:       ScaleAll,
		AxisSize:      mgl32.Vec3{1, 1, 1},
		AxisLineScale: mgl32.Vec3{1, 1, 1},
		XYZSize:       1,
		Orientation:   core.OrientationSigned,
	}
}

func (p ScaleParam) ShouldShow(i int) bool {
	return p.Handles&(1<<i) != 0
}
