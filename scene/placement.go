package scene

import (
	"math/rand/v2"

	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/vmath"
)

// RandomPlacement draws a decorative planet position
// y is rejection-sampled until it leaves the player's band; x and z are unconstrained within range
func RandomPlacement(rng *rand.Rand) vmath.Vec3 {
	x := vmath.RandRange(rng, constants.PlacementHorizontalMin, constants.PlacementHorizontalMax)
	y := vmath.RandRange(rng, constants.PlacementVerticalMin, constants.PlacementVerticalMax)
	for InExcludedBand(y) {
		y = vmath.RandRange(rng, constants.PlacementVerticalMin, constants.PlacementVerticalMax)
	}
	z := vmath.RandRange(rng, constants.PlacementHorizontalMin, constants.PlacementHorizontalMax)
	return vmath.Vec3{X: x, Y: y, Z: z}
}

// InExcludedBand reports whether y falls in the closed band reserved for the player
func InExcludedBand(y float64) bool {
	return y >= -constants.PlacementExcludedBand && y <= constants.PlacementExcludedBand
}
