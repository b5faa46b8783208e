// Package collision decides whether the ball is supported by the path.
package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/entity"
)

// DefaultForgiveness narrows each plank's support region to 70% of its
// half-extent so near-miss landings still count as on the path.
const DefaultForgiveness = 0.7

// Supports reports whether the plank holds the ball at the given position.
func Supports(ball mgl64.Vec3, plank *entity.Plank, forgiveness float64) bool {
	return plank.SupportBox(forgiveness).Contains(ball.X(), ball.Z())
}

// Check tests planks from oldest to newest and returns the index of the
// first one supporting the ball. ok is false when none does. Neither the
// ball position nor the planks are modified.
func Check(ball mgl64.Vec3, planks []*entity.Plank, forgiveness float64) (index int, ok bool) {
	for i, p := range planks {
		if Supports(ball, p, forgiveness) {
			return i, true
		}
	}
	return -1, false
}

// NearFront reports whether index is one of the two newest of n planks.
func NearFront(index, n int) bool {
	return index >= 0 && index >= n-2
}
