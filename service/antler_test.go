package service

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-suite/domain"
)

func sampleAntlers() domain.AntlerInput {
	return domain.AntlerInput{
		Species:      domain.SpeciesWhitetail,
		Mode:         domain.ModeTypical,
		InsideSpread: "20",
		Left: domain.AntlerSide{
			MainBeam:       "25",
			Tines:          [domain.AntlerTineCount]string{"5", "10", "9", "6"},
			Circumferences: [domain.AntlerCircumferenceCount]string{"4.5", "4", "4", "3.5"},
		},
		Right: domain.AntlerSide{
			MainBeam:       "24.5",
			Tines:          [domain.AntlerTineCount]string{"5.5", "9", "9", "6"},
			Circumferences: [domain.AntlerCircumferenceCount]string{"4.5", "4", "4", "3.5"},
		},
		AbnormalLeft: "3",
	}
}

func TestDeriveAntler_Typical(t *testing.T) {
	r := DeriveAntler(sampleAntlers())

	assert.Equal(t, 20.0, r.SpreadCredit)
	assert.Equal(t, 71.0, r.LeftTotal)
	assert.Equal(t, 70.0, r.RightTotal)
	assert.Equal(t, 161.0, r.GrossScore)
	assert.Equal(t, 2.0, r.TotalDifference)
	assert.Equal(t, 3.0, r.AbnormalTotal)
	assert.Equal(t, 156.0, r.NetTypical)
	assert.Equal(t, 164.0, r.NetNonTypical)
	assert.Equal(t, r.NetTypical, r.NetScore)

	assert.Equal(t, 170.0, r.AllTimeMinimum)
	assert.Equal(t, 160.0, r.AwardsMinimum)
	assert.False(t, r.QualifiesAllTime)
	assert.False(t, r.QualifiesAwards)

	require.Len(t, r.Differences, 1+domain.AntlerTineCount+domain.AntlerCircumferenceCount)
	assert.Equal(t, "main beam", r.Differences[0].Measurement)
	assert.Equal(t, 0.5, r.Differences[0].Difference)
	assert.Equal(t, "G2", r.Differences[2].Measurement)
	assert.Equal(t, 1.0, r.Differences[2].Difference)
}

func TestDeriveAntler_NonTypicalQualifies(t *testing.T) {
	in := sampleAntlers()
	in.Mode = domain.ModeNonTypical
	in.AbnormalRight = "30"

	r := DeriveAntler(in)
	assert.Equal(t, 194.0, r.NetNonTypical)
	assert.Equal(t, r.NetNonTypical, r.NetScore)
	assert.Equal(t, 195.0, r.AllTimeMinimum)
	assert.False(t, r.QualifiesAllTime)
	assert.True(t, r.QualifiesAwards)
}

func TestDeriveAntler_SpreadCappedAtLongerBeam(t *testing.T) {
	in := sampleAntlers()
	in.InsideSpread = "30"
	r := DeriveAntler(in)
	assert.Equal(t, 25.0, r.SpreadCredit)
}

func TestDeriveAntler_Defaults(t *testing.T) {
	r := DeriveAntler(domain.AntlerInput{})
	assert.Equal(t, domain.SpeciesWhitetail, r.Species)
	assert.Equal(t, domain.ModeTypical, r.Mode)
	assert.Zero(t, r.GrossScore)
	assert.Zero(t, r.NetScore)
}

func TestDeriveAntler_UnknownSpeciesScoredAsWhitetail(t *testing.T) {
	in := sampleAntlers()
	in.Species = "moose"
	r := DeriveAntler(in)
	assert.Equal(t, domain.SpeciesWhitetail, r.Species)

	in.Species = domain.SpeciesWhitetail
	assert.Equal(t, DeriveAntler(in), r)
}

func TestDeriveAntler_ScoreOrdering(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	measure := func() string { return fmt.Sprintf("%.3f", rng.Float64()*30) }

	for i := 0; i < 200; i++ {
		var in domain.AntlerInput
		in.InsideSpread = measure()
		in.Left.MainBeam, in.Right.MainBeam = measure(), measure()
		for j := range domain.AntlerTineCount {
			in.Left.Tines[j], in.Right.Tines[j] = measure(), measure()
		}
		for j := range domain.AntlerCircumferenceCount {
			in.Left.Circumferences[j], in.Right.Circumferences[j] = measure(), measure()
		}
		in.AbnormalLeft, in.AbnormalRight = measure(), measure()

		r := DeriveAntler(in)
		require.LessOrEqual(t, r.NetTypical, r.GrossScore, "%+v", in)
		require.LessOrEqual(t, r.GrossScore, r.NetNonTypical, "%+v", in)
		require.GreaterOrEqual(t, r.NetTypical, 0.0)
	}
}
