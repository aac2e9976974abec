package is456

// LoadCombination represents an IS 456 limit state of collapse load combination
// Based on IS 456:2000 Table 18 - Values of Partial Safety Factor for Loads
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // DL - Dead load
	Live       float64 // IL - Imposed load
	Wind       float64 // WL - Wind load
	Earthquake float64 // EL - Earthquake load
}

// LoadCombinations are the limit state of collapse combinations of Table 18.
// Wind and earthquake are not assumed to act together.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
	{
		ID:          "2",
		Description: "1.5(DL + WL)",
		Dead:        1.5,
		Wind:        1.5,
	},
	{
		ID:          "3",
		Description: "1.5(DL + EL)",
		Dead:        1.5,
		Earthquake:  1.5,
	},
	{
		ID:          "4",
		Description: "0.9DL + 1.5WL",
		Dead:        0.9,
		Wind:        1.5,
	},
	{
		ID:          "5",
		Description: "0.9DL + 1.5EL",
		Dead:        0.9,
		Earthquake:  1.5,
	},
	{
		ID:          "6",
		Description: "1.2(DL + IL + WL)",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
	{
		ID:          "7",
		Description: "1.2(DL + IL + EL)",
		Dead:        1.2,
		Live:        1.2,
		Earthquake:  1.2,
	},
}

// GravityCombinations holds the single combination used for gravity-only design
var GravityCombinations = LoadCombinations[:1]

// Loads holds unfactored actions of one kind (kN/m, kN or kNm, consistently)
type Loads struct {
	Dead       float64
	Live       float64
	Wind       float64
	Earthquake float64
}

// Factored applies the combination to a set of unfactored loads
func (lc LoadCombination) Factored(l Loads) float64 {
	return lc.Dead*l.Dead +
		lc.Live*l.Live +
		lc.Wind*l.Wind +
		lc.Earthquake*l.Earthquake
}

// Governing finds the combination giving the largest factored value.
// Lateral loads are considered in both directions.
func Governing(l Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxValue float64
	var governing LoadCombination

	for _, combo := range combinations {
		v := combo.Factored(l)
		reversed := combo.Factored(Loads{Dead: l.Dead, Live: l.Live, Wind: -l.Wind, Earthquake: -l.Earthquake})
		if reversed > v {
			v = reversed
		}
		if v > maxValue || governing.ID == "" {
			maxValue = v
			governing = combo
		}
	}

	return maxValue, governing
}
