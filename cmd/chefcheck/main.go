// Command chefcheck runs the built-in verification suite for the
// chefscale core packages and reports per-check results.
//
// Usage:
//
//	chefcheck [flags] [section ...]
//
// Without arguments it runs all sections.
//
// Examples:
//
//	chefcheck
//	chefcheck filter recipe
//	chefcheck -color=false weighing
//	chefcheck -list
//
// The process exits 0 when every check passes and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dipampaul17/chefscale/recipe"
	"github.com/dipampaul17/chefscale/report"
	"github.com/dipampaul17/chefscale/scale/kalman"
	"github.com/dipampaul17/chefscale/scale/noise"
	"github.com/dipampaul17/chefscale/scale/pour"
	"github.com/dipampaul17/chefscale/scale/stability"
	"github.com/dipampaul17/chefscale/scale/tare"
	"github.com/dipampaul17/chefscale/units"
)

type section struct {
	name string
	run  func(r *report.Runner)
}

var sections = []section{
	{"filter", filterChecks},
	{"recipe", recipeChecks},
	{"units", unitChecks},
	{"weighing", weighingChecks},
	{"noise", noiseChecks},
}

func main() {
	color := flag.Bool("color", true, "colorize output")
	list := flag.Bool("list", false, "list sections and exit")
	flag.Parse()

	if *list {
		for _, s := range sections {
			fmt.Println(s.name)
		}
		return
	}

	selected, err := selectSections(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var r report.Runner
	for _, s := range selected {
		s.run(&r)
	}

	summary := r.Summary()
	if err := report.Render(os.Stdout, summary, report.WithColor(*color)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if !summary.OK() {
		os.Exit(1)
	}
}

// selectSections resolves section names to runners; no names selects
// every section.
func selectSections(names []string) ([]section, error) {
	if len(names) == 0 {
		return sections, nil
	}

	out := make([]section, 0, len(names))

	for _, name := range names {
		found := false

		for _, s := range sections {
			if s.name == name {
				out = append(out, s)
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("chefcheck: unknown section %q", name)
		}
	}

	return out, nil
}

func filterChecks(r *report.Runner) {
	e := kalman.New()
	r.Near("filter initialization", e.Update(0), 0, 0.1)

	e = kalman.New()

	var last float64
	for i := 0; i < 20; i++ {
		last = e.Update(100)
	}
	r.Near("filter convergence", last, 100, 5.0)

	e = kalman.New()
	e.Reset()

	for _, m := range []float64{48, 52, 49, 51, 50, 47, 53, 50, 49, 51} {
		last = e.Update(m)
	}
	r.Near("filter noise reduction", last, 50, 2.0)
}

func recipeChecks(r *report.Runner) {
	ingredients := recipe.Parse("200g flour, 150g sugar, 3g salt")
	if r.Equal("recipe count", len(ingredients), 3) {
		r.Equal("first ingredient name", ingredients[0].Name, "flour")
		r.Equal("first ingredient weight", ingredients[0].TargetWeight, 200.0)
	}

	ingredients = recipe.Parse("1 cup flour, 2 tbsp oil")
	if r.Equal("volumetric count", len(ingredients), 2) {
		r.Equal("cup conversion", ingredients[0].TargetWeight, 120.0)
		r.Equal("tablespoon conversion", ingredients[1].TargetWeight, 30.0)
	}

	ingredients = recipe.Parse("100g butter, 4oz chocolate")
	if r.Equal("mixed unit count", len(ingredients), 2) {
		r.Equal("grams parsing", ingredients[0].TargetWeight, 100.0)
		r.Near("ounces conversion", ingredients[1].TargetWeight, 113.4, 0.1)
	}

	ing := recipe.Ingredient{Name: "flour", TargetWeight: 100}
	ing.SetCurrentWeight(98)
	r.Checkf("recipe progress", ing.IsComplete, "98/100 g should complete within tolerance")
}

func unitChecks(r *report.Runner) {
	r.Near("grams to ounces", units.GramsToOunces(100), 3.5274, 0.0001)
	r.Near("ounces to grams", units.OuncesToGrams(5), 141.75, 0.01)

	r.Equal("format small grams", units.Format(5.5, units.Grams), "5.5")
	r.Equal("format large grams", units.Format(50, units.Grams), "50")
	r.Equal("format small ounces", units.Format(10, units.Ounces), "0.35")
	r.Equal("format large ounces", units.Format(100, units.Ounces), "3.5")
}

func weighingChecks(r *report.Runner) {
	tr := tare.NewTracker()
	tr.Set(50)
	r.Equal("tare offset", tr.Display(50), 0.0)

	tr.Set(75)
	h := tr.History()
	if r.Equal("tare history count", len(h), 2) {
		r.Equal("first tare value", h[0], 50.0)
		r.Equal("second tare value", h[1], 75.0)
	}

	r.Checkf("auto-tare detection", tr.ShouldAutoTare(5, 60), "60 g from 5 g should suggest auto-tare")

	r.Checkf("stability detection",
		stability.IsStable([]float64{10.1, 10.0, 10.05, 10.02, 10.0}, 0.1),
		"settled readings should be stable")

	d := pour.NewDetector(4)
	d.Add(10, 0)
	d.Add(15, 500*time.Millisecond)
	d.Add(20, time.Second)
	d.Add(25, 1500*time.Millisecond)
	r.Near("pour rate detection", d.Rate(), 10.0, 0.1)

	r.Checkf("container capacity warning", pour.CapacityWarning(450, 500),
		"90%% fill should warn")
}

func noiseChecks(r *report.Runner) {
	p := noise.Analyze([]float64{48, 52, 49, 51, 50})
	r.Near("noise variance", p.Variance, 2, 1e-9)
	r.Near("suggested measurement noise", p.SuggestMeasurementNoise(), 2, 1e-9)

	p = noise.Analyze([]float64{50, 50, 50, 50})
	r.Near("degenerate fallback", p.SuggestMeasurementNoise(), 0.1, 1e-12)
}
