package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-suite/domain"
)

func TestDeriveSupplementLabel(t *testing.T) {
	r := DeriveSupplementLabel(domain.SupplementInput{
		ProductName:          " Daily Calm ",
		ServingSize:          "2 capsules",
		ServingsPerContainer: "30",
		Ingredients: []domain.SupplementIngredient{
			{Name: "Vitamin C (as Ascorbic Acid)", Amount: "500", Unit: domain.UnitMilligram},
			{Name: "Ashwagandha Root Extract", Amount: "300", Unit: domain.UnitMilligram},
			{Name: "Vitamin D3", Amount: "1000", Unit: domain.UnitIU},
			{Name: "Magnesium", Amount: "100", Unit: domain.UnitIU},
			{Name: "  ", Amount: "5", Unit: domain.UnitGram},
			{Name: "Iron", Amount: "0.018", Unit: domain.UnitGram},
		},
		OtherIngredients: "Cellulose, rice flour",
	})

	assert.Equal(t, "Daily Calm", r.ProductName)
	assert.Equal(t, 30.0, r.ServingsPerContainer)
	require.Len(t, r.Rows, 5)

	names := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		names[i] = row.Name
	}
	want := []string{"Vitamin C (as Ascorbic Acid)", "Vitamin D3", "Iron", "Ashwagandha Root Extract", "Magnesium"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}

	vitaminC := r.Rows[0]
	assert.True(t, vitaminC.HasDailyValue)
	assert.Equal(t, 556.0, vitaminC.DailyValuePercent)
	assert.Equal(t, 15000.0, vitaminC.AmountPerContainer)
	assert.Empty(t, vitaminC.Marker)

	assert.Equal(t, 125.0, r.Rows[1].DailyValuePercent, "1000 IU vitamin D is 25 mcg")
	assert.Equal(t, 100.0, r.Rows[2].DailyValuePercent)

	for _, row := range r.Rows[3:] {
		assert.False(t, row.HasDailyValue, row.Name)
		assert.Equal(t, "†", row.Marker, row.Name)
	}
	assert.Equal(t, "† Daily Value not established.", r.Footnote)
}

func TestDeriveSupplementLabel_NoFootnoteWhenAllHaveDV(t *testing.T) {
	r := DeriveSupplementLabel(domain.SupplementInput{
		Ingredients: []domain.SupplementIngredient{
			{Name: "Zinc", Amount: "11", Unit: "MG"},
			{Name: "Folate", Amount: "400", Unit: "µg"},
		},
	})
	require.Len(t, r.Rows, 2)
	assert.Equal(t, 100.0, r.Rows[0].DailyValuePercent)
	assert.Equal(t, domain.UnitMicrogram, r.Rows[1].Unit)
	assert.Equal(t, 100.0, r.Rows[1].DailyValuePercent)
	assert.Empty(t, r.Footnote)
}

func TestConvertUnit(t *testing.T) {
	v, ok := convertUnit("Calcium", 1.3, domain.UnitGram, domain.UnitMilligram)
	assert.True(t, ok)
	assert.InDelta(t, 1300, v, 1e-9)

	v, ok = convertUnit("Vitamin D", 800, domain.UnitIU, domain.UnitMicrogram)
	assert.True(t, ok)
	assert.Equal(t, 20.0, v)

	_, ok = convertUnit("Vitamin E", 30, domain.UnitIU, domain.UnitMilligram)
	assert.False(t, ok)
}
