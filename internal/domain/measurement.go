package domain

// Acceptable ranges per unit, inclusive on both ends. The bounds are round
// numbers chosen per unit for usability, not exact conversions of one
// canonical range.
var (
	weightRanges = map[WeightUnit][2]float64{
		Kilograms: {20, 500},
		Pounds:    {44, 1100},
		Stone:     {3, 79},
	}
	waistRanges = map[WaistUnit][2]float64{
		Centimeters: {40, 200},
		Inches:      {16, 79},
	}
)

// WeightMeasurement is a validated weight value with its unit. Build one
// with NewWeightMeasurement when the value comes from outside the system.
type WeightMeasurement struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// NewWeightMeasurement validates value against the unit's acceptable range.
func NewWeightMeasurement(value float64, unit WeightUnit) (WeightMeasurement, error) {
	r, ok := weightRanges[unit]
	if !ok {
		return WeightMeasurement{}, NewValidationError("Invalid weight unit: %s. Must be one of: kg, lbs, st", unit)
	}
	if value <= 0 {
		return WeightMeasurement{}, NewValidationError("Weight must be a positive number")
	}
	if value < r[0] || value > r[1] {
		return WeightMeasurement{}, NewValidationError("Weight must be between %g and %g %s", r[0], r[1], unit)
	}
	return WeightMeasurement{Value: value, Unit: unit}, nil
}

// WaistMeasurement is a validated waist circumference with its unit.
type WaistMeasurement struct {
	Value float64   `json:"value"`
	Unit  WaistUnit `json:"unit"`
}

// NewWaistMeasurement validates value against the unit's acceptable range.
func NewWaistMeasurement(value float64, unit WaistUnit) (WaistMeasurement, error) {
	r, ok := waistRanges[unit]
	if !ok {
		return WaistMeasurement{}, NewValidationError("Invalid waist unit: %s. Must be one of: cm, inches", unit)
	}
	if value <= 0 {
		return WaistMeasurement{}, NewValidationError("Waist size must be a positive number")
	}
	if value < r[0] || value > r[1] {
		return WaistMeasurement{}, NewValidationError("Waist size must be between %g and %g %s", r[0], r[1], unit)
	}
	return WaistMeasurement{Value: value, Unit: unit}, nil
}
