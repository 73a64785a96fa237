package domain

import (
	"fmt"
	"math"
)

// Conversion factors. Weight pivots through kilograms and waist through
// centimeters, so every unit needs exactly one factor to the pivot and the
// pivot matches the canonical storage unit.
const (
	lbsPerKg   = 2.20462262185
	kgPerStone = 6.35029318
	cmPerInch  = 2.54
)

// ConvertWeight converts a weight value between kg, lbs and st. The result
// is rounded to 4 decimal places, except when from == to, which returns v
// exactly. Passing an unknown unit is a programming error and panics; raw
// input must go through ParseWeightUnit first.
func ConvertWeight(v float64, from, to WeightUnit) float64 {
	if from == to {
		return v
	}

	var kg float64
	switch from {
	case Kilograms:
		kg = v
	case Pounds:
		kg = v / lbsPerKg
	case Stone:
		kg = v * kgPerStone
	default:
		panic(fmt.Sprintf("unsupported weight unit: %q", from))
	}

	var result float64
	switch to {
	case Kilograms:
		result = kg
	case Pounds:
		result = kg * lbsPerKg
	case Stone:
		result = kg / kgPerStone
	default:
		panic(fmt.Sprintf("unsupported weight unit: %q", to))
	}

	return round4(result)
}

// ConvertWaist converts a waist circumference between cm and inches, with
// the same identity, rounding and unknown-unit rules as ConvertWeight.
func ConvertWaist(v float64, from, to WaistUnit) float64 {
	if from == to {
		return v
	}

	var result float64
	switch {
	case from == Centimeters && to == Inches:
		result = v / cmPerInch
	case from == Inches && to == Centimeters:
		result = v * cmPerInch
	default:
		panic(fmt.Sprintf("unsupported waist conversion: %q to %q", from, to))
	}

	return round4(result)
}

// round4 bounds floating-point drift while keeping enough precision for
// repeated round-trips through the pivot unit.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
