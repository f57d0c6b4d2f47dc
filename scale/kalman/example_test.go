package kalman_test

import (
	"fmt"

	"github.com/dipampaul17/chefscale/scale/kalman"
)

func ExampleEstimator_Update() {
	e := kalman.New()

	var last float64
	for _, m := range []float64{48, 52, 49, 51, 50, 47, 53, 50, 49, 51} {
		last = e.Update(m)
	}

	fmt.Printf("estimate=%.0f\n", last)

	// Output:
	// estimate=50
}
