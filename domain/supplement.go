package domain

type Unit string

const (
	UnitMilligram Unit = "mg"
	UnitMicrogram Unit = "mcg"
	UnitGram      Unit = "g"
	UnitIU        Unit = "iu"
)

type SupplementIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   Unit   `json:"unit"`
}

type SupplementInput struct {
	ProductName          string                 `json:"product_name"`
	ServingSize          string                 `json:"serving_size"`
	ServingsPerContainer string                 `json:"servings_per_container"`
	Ingredients          []SupplementIngredient `json:"ingredients"`
	OtherIngredients     string                 `json:"other_ingredients"`
}

type SupplementRow struct {
	Name               string  `json:"name"`
	Amount             float64 `json:"amount"`
	Unit               Unit    `json:"unit"`
	AmountPerContainer float64 `json:"amount_per_container"`
	DailyValuePercent  float64 `json:"daily_value_percent"`
	HasDailyValue      bool    `json:"has_daily_value"`
	Marker             string  `json:"marker,omitempty"`
}

type SupplementResult struct {
	ProductName          string          `json:"product_name"`
	ServingSize          string          `json:"serving_size"`
	ServingsPerContainer float64         `json:"servings_per_container"`
	Rows                 []SupplementRow `json:"rows"`
	OtherIngredients     string          `json:"other_ingredients"`
	Footnote             string          `json:"footnote,omitempty"`
}
