// Package units provides weight unit conversions and display formatting
// for scale readings.
package units

import "strconv"

// Conversion constants. The volumetric constants model household
// measures; a cup is calibrated for flour, the only ingredient density
// carried by the reference recipes.
const (
	GramsPerOunce = 28.35
	OuncesPerGram = 0.035274

	GramsPerCupFlour   = 120.0
	GramsPerTablespoon = 15.0
)

// Unit identifies a display unit for weights.
type Unit int

// Supported display units.
const (
	Grams Unit = iota
	Ounces
)

// String returns the unit symbol.
func (u Unit) String() string {
	switch u {
	case Ounces:
		return "oz"
	default:
		return "g"
	}
}

// GramsToOunces converts a weight in grams to ounces.
func GramsToOunces(grams float64) float64 {
	return grams * OuncesPerGram
}

// OuncesToGrams converts a weight in ounces to grams.
func OuncesToGrams(ounces float64) float64 {
	return ounces * GramsPerOunce
}

// Format renders a weight in grams for display in the given unit.
//
// Grams show one decimal below 10 g and none above; ounces show two
// decimals below 1 oz and one above, so small amounts keep a readable
// resolution without jittering the last digit on large ones.
func Format(weightGrams float64, unit Unit) string {
	if unit == Ounces {
		oz := GramsToOunces(weightGrams)
		if oz < 1 {
			return strconv.FormatFloat(oz, 'f', 2, 64)
		}

		return strconv.FormatFloat(oz, 'f', 1, 64)
	}

	if weightGrams < 10 {
		return strconv.FormatFloat(weightGrams, 'f', 1, 64)
	}

	return strconv.FormatFloat(weightGrams, 'f', 0, 64)
}
