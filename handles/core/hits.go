package core

import "math"

// PickDistance is the largest screen distance, in pixels, at which a handle can be picked.
const PickDistance = 5

// NearestHit is the default HitRegistrar: the closest candidate within PickDistance wins,
// later candidates win ties.
type NearestHit struct {
	nearest  HandleID
	distance float32
}

func NewNearestHit() *NearestHit {
	h := &NearestHit{}
	h.Reset()
	return h
}

func (h *NearestHit) Reset() {
	h.nearest = 0
	h.distance = math.MaxFloat32
}

func (h *NearestHit) AddCandidate(id HandleID, distance float32) {
	if distance > PickDistance || math.IsNaN(float64(distance)) {
		return
	}
	if distance <= h.distance {
		h.nearest = id
		h.distance = distance
	}
}

func (h *NearestHit) Nearest() HandleID { return h.nearest }

// Distance is the distance of the current nearest candidate.
func (h *NearestHit) Distance() float32 { return h.distance }
