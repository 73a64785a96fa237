package domain

// WeightUnit is one of the closed set of supported weight units.
type WeightUnit string

// Supported weight units.
const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
	Stone     WeightUnit = "st"
)

// WaistUnit is one of the closed set of supported waist-circumference units.
type WaistUnit string

// Supported waist units.
const (
	Centimeters WaistUnit = "cm"
	Inches      WaistUnit = "inches"
)

// ParseWeightUnit converts a raw unit tag into a WeightUnit, rejecting
// anything outside the supported set.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case Kilograms, Pounds, Stone:
		return WeightUnit(s), nil
	}
	return "", NewValidationError("Invalid weight unit: %s. Must be one of: kg, lbs, st", s)
}

// ParseWaistUnit converts a raw unit tag into a WaistUnit, rejecting
// anything outside the supported set.
func ParseWaistUnit(s string) (WaistUnit, error) {
	switch WaistUnit(s) {
	case Centimeters, Inches:
		return WaistUnit(s), nil
	}
	return "", NewValidationError("Invalid waist unit: %s. Must be one of: cm, inches", s)
}
