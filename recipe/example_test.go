package recipe_test

import (
	"fmt"

	"github.com/dipampaul17/chefscale/recipe"
)

func ExampleParse() {
	for _, ing := range recipe.Parse("200g flour, 1 cup flour, 2 tbsp oil") {
		fmt.Printf("%s: %.0fg\n", ing.Name, ing.TargetWeight)
	}

	// Output:
	// flour: 200g
	// flour: 120g
	// oil: 30g
}
