package service

import (
	"fmt"
	"math"

	"calc-suite/domain"
	"calc-suite/reference"
)

// DeriveAntler scores a set of antlers with Boone and Crockett style
// measurements. Every left/right pair contributes to the gross score and its
// difference is the symmetry deduction. Typical scoring also deducts the
// abnormal points; non-typical scoring adds them and waives the symmetry
// deductions, so NetTypical <= GrossScore <= NetNonTypical always holds.
func DeriveAntler(input domain.AntlerInput) domain.AntlerResult {
	species := input.Species
	if !reference.KnownSpecies(species) {
		species = domain.SpeciesWhitetail
	}
	mode := input.Mode
	if mode != domain.ModeNonTypical {
		mode = domain.ModeTypical
	}

	result := domain.AntlerResult{
		Species:     species,
		Mode:        mode,
		Differences: make([]domain.PairDifference, 0, 1+domain.AntlerTineCount+domain.AntlerCircumferenceCount),
	}

	addPair := func(name, left, right string) {
		l := parseAmount(left, MaxMeasurement)
		r := parseAmount(right, MaxMeasurement)
		result.LeftTotal += l
		result.RightTotal += r
		diff := math.Abs(l - r)
		result.TotalDifference += diff
		result.Differences = append(result.Differences, domain.PairDifference{
			Measurement: name,
			Left:        l,
			Right:       r,
			Difference:  roundTo2Decimals(diff),
		})
	}

	addPair("main beam", input.Left.MainBeam, input.Right.MainBeam)
	for i := range domain.AntlerTineCount {
		addPair(fmt.Sprintf("G%d", i+1), input.Left.Tines[i], input.Right.Tines[i])
	}
	for i := range domain.AntlerCircumferenceCount {
		addPair(fmt.Sprintf("H%d", i+1), input.Left.Circumferences[i], input.Right.Circumferences[i])
	}

	// The spread credit may not exceed the longer main beam.
	longerBeam := math.Max(result.Differences[0].Left, result.Differences[0].Right)
	result.SpreadCredit = math.Min(parseAmount(input.InsideSpread, MaxMeasurement), longerBeam)

	result.AbnormalTotal = parseAmount(input.AbnormalLeft, MaxMeasurement) +
		parseAmount(input.AbnormalRight, MaxMeasurement)

	gross := result.SpreadCredit + result.LeftTotal + result.RightTotal
	result.GrossScore = roundTo2Decimals(gross)
	result.NetTypical = roundTo2Decimals(nonNegative(gross - result.TotalDifference - result.AbnormalTotal))
	result.NetNonTypical = roundTo2Decimals(gross + result.AbnormalTotal)

	result.SpreadCredit = roundTo2Decimals(result.SpreadCredit)
	result.LeftTotal = roundTo2Decimals(result.LeftTotal)
	result.RightTotal = roundTo2Decimals(result.RightTotal)
	result.TotalDifference = roundTo2Decimals(result.TotalDifference)
	result.AbnormalTotal = roundTo2Decimals(result.AbnormalTotal)

	result.NetScore = result.NetTypical
	if mode == domain.ModeNonTypical {
		result.NetScore = result.NetNonTypical
	}

	minimums := reference.AntlerMinimums(species, mode)
	result.AllTimeMinimum = minimums.AllTime
	result.AwardsMinimum = minimums.Awards
	result.QualifiesAllTime = result.NetScore >= minimums.AllTime
	result.QualifiesAwards = result.NetScore >= minimums.Awards

	return result
}
