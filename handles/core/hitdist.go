package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// arcSegments is the number of sample points used for arc and disc hit tests.
const arcSegments = 60

// DistancePointSegment is the distance from p to the segment ab.
func DistancePointSegment(p, a, b mgl32.Vec2) float32 {
	return p.Sub(ClosestPointOnSegment(p, a, b)).Len()
}

func ClosestPointOnSegment(p, a, b mgl32.Vec2) mgl32.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := mgl32.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Mul(t))
}

func DistanceToLine(cam CameraProjector, mouse mgl32.Vec2, p1, p2 mgl32.Vec3) float32 {
	return DistancePointSegment(mouse, cam.WorldToScreen(p1), cam.WorldToScreen(p2))
}

// DistanceToCircle measures to a camera-facing circle; points inside are at distance 0.
func DistanceToCircle(cam CameraProjector, mouse mgl32.Vec2, center mgl32.Vec3, radius float32) float32 {
	sc := cam.WorldToScreen(center)
	edge := cam.WorldToScreen(center.Add(cam.Right().Mul(radius)))
	r := sc.Sub(edge).Len()
	d := sc.Sub(mouse).Len()
	if d < r {
		return 0
	}
	return d - r
}

func DistanceToPolyLine(cam CameraProjector, mouse mgl32.Vec2, points []mgl32.Vec3) float32 {
	if len(points) == 0 {
		return math.MaxFloat32
	}
	prev := cam.WorldToScreen(points[0])
	best := mouse.Sub(prev).Len()
	for _, p := range points[1:] {
		cur := cam.WorldToScreen(p)
		if d := DistancePointSegment(mouse, prev, cur); d < best {
			best = d
		}
		prev = cur
	}
	return best
}

func DistanceToArc(cam CameraProjector, mouse mgl32.Vec2, center, normal, from mgl32.Vec3, angle, radius float32) float32 {
	return DistanceToPolyLine(cam, mouse, DiscSectionPoints(center, normal, from, angle, radius, arcSegments))
}

func DistanceToDisc(cam CameraProjector, mouse mgl32.Vec2, center, normal mgl32.Vec3, radius float32) float32 {
	return DistanceToArc(cam, mouse, center, normal, DiscTangent(normal), 360, radius)
}

// ClosestPointToArc returns the world point on the arc whose projection is nearest to mouse.
func ClosestPointToArc(cam CameraProjector, mouse mgl32.Vec2, center, normal, from mgl32.Vec3, angle, radius float32) mgl32.Vec3 {
	points := DiscSectionPoints(center, normal, from, angle, radius, arcSegments)
	best := float32(math.MaxFloat32)
	closest := points[0]
	for i := 0; i < len(points)-1; i++ {
		a, b := cam.WorldToScreen(points[i]), cam.WorldToScreen(points[i+1])
		onSeg := ClosestPointOnSegment(mouse, a, b)
		d := mouse.Sub(onSeg).Len()
		if d >= best {
			continue
		}
		best = d
		t := float32(0)
		if ab := b.Sub(a); ab.Dot(ab) > 0 {
			t = onSeg.Sub(a).Len() / ab.Len()
		}
		closest = points[i].Add(points[i+1].Sub(points[i]).Mul(t))
	}
	dir := Normalize(closest.Sub(center), Normalize(from, DiscTangent(normal)))
	return center.Add(dir.Mul(radius))
}

func ClosestPointToDisc(cam CameraProjector, mouse mgl32.Vec2, center, normal mgl32.Vec3, radius float32) mgl32.Vec3 {
	return ClosestPointToArc(cam, mouse, center, normal, DiscTangent(normal), 360, radius)
}

// DistanceToQuad measures to the quad center±a±b; points inside the projected quad are at distance 0.
func DistanceToQuad(cam CameraProjector, mouse mgl32.Vec2, center, a, b mgl32.Vec3) float32 {
	corners := [4]mgl32.Vec2{
		cam.WorldToScreen(center.Add(a).Add(b)),
		cam.WorldToScreen(center.Add(a).Sub(b)),
		cam.WorldToScreen(center.Sub(a).Sub(b)),
		cam.WorldToScreen(center.Sub(a).Add(b)),
	}
	if convexContains(corners[:], mouse) {
		return 0
	}
	best := float32(math.MaxFloat32)
	for i := range corners {
		if d := DistancePointSegment(mouse, corners[i], corners[(i+1)%4]); d < best {
			best = d
		}
	}
	return best
}

// DistanceToRectangle measures to a square of half-extent size in the XY plane of rotation.
func DistanceToRectangle(cam CameraProjector, mouse mgl32.Vec2, center mgl32.Vec3, rotation mgl32.Quat, size float32) float32 {
	a := rotation.Rotate(mgl32.Vec3{size, 0, 0})
	b := rotation.Rotate(mgl32.Vec3{0, size, 0})
	return DistanceToQuad(cam, mouse, center, a, b)
}

// DistanceToCube measures to the camera-facing square covering a cube of edge size.
func DistanceToCube(cam CameraProjector, mouse mgl32.Vec2, center mgl32.Vec3, size float32) float32 {
	half := size * 0.5
	return DistanceToQuad(cam, mouse, center, cam.Right().Mul(half), cam.Up().Mul(half))
}

// convexContains reports whether p lies inside a convex polygon using cross-product sign test.
func convexContains(points []mgl32.Vec2, p mgl32.Vec2) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		cross := (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return positive || negative
}

// RayPlane intersects a ray with the plane through point with the given normal.
func RayPlane(origin, dir, point, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := dir.Dot(normal)
	if float32(math.Abs(float64(denom))) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := point.Sub(origin).Dot(normal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}
