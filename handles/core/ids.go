package core

import (
	"hash/fnv"
	"strconv"
)

// HandleID identifies one sub-handle. 0 means "no handle".
type HandleID int32

// RoleID derives a stable id from a role name. instance separates composites that coexist
// in one frame; instance 0 hashes the bare role name.
func RoleID(role string, instance int) HandleID {
	h := fnv.New32a()
	h.Write([]byte(role))
	if instance != 0 {
		h.Write([]byte("#" + strconv.Itoa(instance)))
	}
	id := HandleID(int32(h.Sum32()))
	if id == 0 {
		id = 1
	}
	return id
}

// PositionIDs indexes as X, Y, Z, XY, YZ, XZ, XYZ.
type PositionIDs struct {
	X, Y, Z, XY, YZ, XZ, XYZ HandleID
}

func NewPositionIDs(instance int) PositionIDs {
	return PositionIDs{
		X:   RoleID("xAxisFreeMoveHandleHash", instance),
		Y:   RoleID("yAxisFreeMoveHandleHash", instance),
		Z:   RoleID("zAxisFreeMoveHandleHash", instance),
		XY:  RoleID("xyAxisFreeMoveHandleHash", instance),
		YZ:  RoleID("yzAxisFreeMoveHandleHash", instance),
		XZ:  RoleID("xzAxisFreeMoveHandleHash", instance),
		XYZ: RoleID("FreeMoveHandleHash", instance),
	}
}

func (ids PositionIDs) At(i int) HandleID {
	switch i {
	case 0:
		return ids.X
	case 1:
		return ids.Y
	case 2:
		return ids.Z
	case 3:
		return ids.XY
	case 4:
		return ids.YZ
	case 5:
		return ids.XZ
	case 6:
		return ids.XYZ
	}
	return 0
}

func (ids PositionIDs) Has(id HandleID) bool {
	if id == 0 {
		return false
	}
	for i := 0; i < 7; i++ {
		if ids.At(i) == id {
			return true
		}
	}
	return false
}

// RotationIDs indexes as X, Y, Z, CameraAxis, XYZ.
type RotationIDs struct {
	X, Y, Z, CameraAxis, XYZ HandleID
}

func NewRotationIDs(instance int) RotationIDs {
	return RotationIDs{
		X:          RoleID("xRotateHandleHash", instance),
		Y:          RoleID("yRotateHandleHash", instance),
		Z:          RoleID("zRotateHandleHash", instance),
		CameraAxis: RoleID("cameraAxisRotateHandleHash", instance),
		XYZ:        RoleID("xyzRotateHandleHash", instance),
	}
}

func (ids RotationIDs) At(i int) HandleID {
	switch i {
	case 0:
		return ids.X
	case 1:
		return ids.Y
	case 2:
		return ids.Z
	case 3:
		return ids.CameraAxis
	case 4:
		return ids.XYZ
	}
	return 0
}

func (ids RotationIDs) Has(id HandleID) bool {
	if id == 0 {
		return false
	}
	for i := 0; i < 5; i++ {
		if ids.At(i) == id {
			return true
		}
	}
	return false
}

// ScaleIDs indexes as X, Y, Z, XYZ.
type ScaleIDs struct {
	X, Y, Z, XYZ HandleID
}

func NewScaleIDs(instance int) ScaleIDs {
	return ScaleIDs{
		X:   RoleID("xScaleHandleHash", instance),
		Y:   RoleID("yScaleHandleHash", instance),
		Z:   RoleID("zScaleHandleHash", instance),
		XYZ: RoleID("xyzScaleHandleHash", instance),
	}
}

func (ids ScaleIDs) At(i int) HandleID {
	switch i {
	case 0:
		return ids.X
	case 1:
		return ids.Y
	case 2:
		return ids.Z
	case 3:
		return ids.XYZ
	}
	return 0
}

func (ids ScaleIDs) Has(id HandleID) bool {
	if id == 0 {
		return false
	}
	for i := 0; i < 4; i++ {
		if ids.At(i) == id {
			return true
		}
	}
	return false
}
