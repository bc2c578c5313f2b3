package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCamera_OrthographicProjection(t *testing.T) {
	cam := frontCamera()
	tests := []struct {
		name  string
		world mgl32.Vec3
		want  mgl32.Vec2
	}{
		{"origin", mgl32.Vec3{0, 0, 0}, mgl32.Vec2{400, 300}},
		{"right", mgl32.Vec3{1, 0, 0}, mgl32.Vec2{500, 300}},
		{"up", mgl32.Vec3{0, 1, 0}, mgl32.Vec2{400, 200}},
		{"depth ignored", mgl32.Vec3{0, 0, 5}, mgl32.Vec2{400, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.WorldToScreen(tt.world)
			assert.True(t, Vec2Near(got, tt.want, 1e-3), "got %v", got)
		})
	}
	assert.InDelta(t, 0.8, cam.HandleSize(mgl32.Vec3{3, 2, 1}), 1e-5)
}

func TestCamera_TopDown(t *testing.T) {
	cam := NewOrthographicCamera(800, 600, 3, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, -1})
	assert.True(t, Vec3Near(cam.Forward(), mgl32.Vec3{0, -1, 0}, 1e-5))
	assert.True(t, Vec3Near(cam.Right(), mgl32.Vec3{1, 0, 0}, 1e-5))
	assert.True(t, Vec3Near(cam.Up(), mgl32.Vec3{0, 0, -1}, 1e-5))

	s := cam.WorldToScreen(mgl32.Vec3{0.17, 2.5, 0.17})
	assert.True(t, Vec2Near(s, mgl32.Vec2{417, 317}, 1e-3), "got %v", s)
}

func TestCamera_PerspectiveRayRoundTrip(t *testing.T) {
	cam := NewCamera(1024, 768)
	cam.Pos = mgl32.Vec3{3, 4, -8}
	cam.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	points := []mgl32.Vec3{{0, 0, 0}, {1, 2, 0.5}, {-2, 0.5, 1}}
	for _, p := range points {
		origin, dir := cam.ScreenToWorldRay(cam.WorldToScreen(p))
		assert.InDelta(t, 1, dir.Len(), 1e-4)
		toPoint := p.Sub(origin)
		along := toPoint.Dot(dir)
		miss := toPoint.Sub(dir.Mul(along)).Len()
		assert.Less(t, miss, float32(1e-3), "point %v", p)
	}
}

func TestCamera_PerspectiveHandleSizeGrowsWithDistance(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Pos = mgl32.Vec3{0, 0, 10}
	near := cam.HandleSize(mgl32.Vec3{0, 0, 0})
	far := cam.HandleSize(mgl32.Vec3{0, 0, -10})
	assert.InDelta(t, far, 2*near, 1e-3)
}
