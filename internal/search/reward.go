package search

// MassReward maps a design's mass in grams onto its reward band.
// Designs at or below 70 g earn the full bonus; anything above 170 g
// takes a steep penalty.
func MassReward(mass float64) float64 {
	switch {
	case mass <= 70:
		return 10
	case mass <= 80:
		return 7
	case mass <= 100:
		return 4
	case mass <= 120:
		return 2
	case mass <= 170:
		return 0
	default:
		return -20
	}
}

// DeflectionReward maps the midspan deflection in millimeters onto its
// reward band.
func DeflectionReward(deflection float64) float64 {
	switch {
	case deflection <= 2:
		return 10
	case deflection <= 3:
		return 5
	case deflection <= 4:
		return 2
	default:
		return -15
	}
}

// Reward combines the two bands, weighting mass three times as heavily
// as deflection.
func Reward(mass, deflection float64) float64 {
	return 0.75*MassReward(mass) + 0.25*DeflectionReward(deflection)
}
