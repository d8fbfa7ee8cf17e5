package impact

// Estimate holds the environmental quantities computed for one activity.
// A nil field means the category does not produce that quantity; it is
// stored as NULL and excluded from dashboard sums.
type Estimate struct {
	CO2SavedKg  *float64 `json:"co2SavedKg,omitempty"`
	WaterSavedL *float64 `json:"waterSavedL,omitempty"`
}

// Per-category conversion factors. CO2 figures are kg saved per unit of
// the submitted value (km biked, trees planted, kWh saved, kg diverted);
// water conservation is litres, factor 1.
const (
	greenTransportFactor = 0.2
	treePlantationFactor = 21
	energySavingFactor   = 0.82
	wasteReductionFactor = 1.5
)

// Compute maps a category and its numeric value to an impact estimate.
// Category matching is exact; an unrecognized category yields an empty
// estimate rather than an error.
func Compute(category string, value float64) Estimate {
	switch category {
	case "Green Transportation":
		return Estimate{CO2SavedKg: ptr(value * greenTransportFactor)}
	case "Water Conservation":
		return Estimate{WaterSavedL: ptr(value)}
	case "Tree Plantation":
		return Estimate{CO2SavedKg: ptr(value * treePlantationFactor)}
	case "Energy Saving":
		return Estimate{CO2SavedKg: ptr(value * energySavingFactor)}
	case "Waste Reduction":
		return Estimate{CO2SavedKg: ptr(value * wasteReductionFactor)}
	default:
		return Estimate{}
	}
}

func ptr(v float64) *float64 {
	return &v
}
