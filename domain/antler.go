package domain

type Species string

const (
	SpeciesWhitetail Species = "whitetail"
	SpeciesMuleDeer  Species = "mule_deer"
	SpeciesCoues     Species = "coues"
	SpeciesBlacktail Species = "blacktail"
)

type ScoringMode string

const (
	ModeTypical    ScoringMode = "typical"
	ModeNonTypical ScoringMode = "non_typical"
)

const (
	AntlerTineCount          = 7
	AntlerCircumferenceCount = 4
)

// AntlerSide holds one antler's measurements in inches: main beam length,
// typical point lengths G1..G7 and circumferences H1..H4.
type AntlerSide struct {
	MainBeam       string                           `json:"main_beam"`
	Tines          [AntlerTineCount]string          `json:"tines"`
	Circumferences [AntlerCircumferenceCount]string `json:"circumferences"`
}

type AntlerInput struct {
	Species       Species     `json:"species"`
	Mode          ScoringMode `json:"mode"`
	InsideSpread  string      `json:"inside_spread"`
	Left          AntlerSide  `json:"left"`
	Right         AntlerSide  `json:"right"`
	AbnormalLeft  string      `json:"abnormal_left"`
	AbnormalRight string      `json:"abnormal_right"`
}

// PairDifference is the side-to-side deduction for one measurement.
type PairDifference struct {
	Measurement string  `json:"measurement"`
	Left        float64 `json:"left"`
	Right       float64 `json:"right"`
	Difference  float64 `json:"difference"`
}

type AntlerResult struct {
	Species Species     `json:"species"`
	Mode    ScoringMode `json:"mode"`

	SpreadCredit float64 `json:"spread_credit"`
	LeftTotal    float64 `json:"left_total"`
	RightTotal   float64 `json:"right_total"`
	GrossScore   float64 `json:"gross_score"`

	Differences     []PairDifference `json:"differences"`
	TotalDifference float64          `json:"total_difference"`
	AbnormalTotal   float64          `json:"abnormal_total"`

	NetTypical    float64 `json:"net_typical"`
	NetNonTypical float64 `json:"net_non_typical"`
	NetScore      float64 `json:"net_score"`

	AllTimeMinimum   float64 `json:"all_time_minimum"`
	AwardsMinimum    float64 `json:"awards_minimum"`
	QualifiesAllTime bool    `json:"qualifies_all_time"`
	QualifiesAwards  bool    `json:"qualifies_awards"`
}
