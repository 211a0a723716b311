package domain

type EducationLevel string

const (
	EducationNone      EducationLevel = "none"
	EducationSecondary EducationLevel = "secondary"
	EducationOneYear   EducationLevel = "one_year"
	EducationTwoYear   EducationLevel = "two_year"
	EducationBachelors EducationLevel = "bachelors_3plus"
	EducationTwoOrMore EducationLevel = "two_or_more"
	EducationMasters   EducationLevel = "masters"
	EducationDoctoral  EducationLevel = "doctoral"
)

// LanguageTest names the scale LanguageScores are expressed in. CLB and
// CELPIP levels are used as-is; IELTS band scores are converted to CLB.
type LanguageTest string

const (
	TestCLB    LanguageTest = "clb"
	TestCELPIP LanguageTest = "celpip"
	TestIELTS  LanguageTest = "ielts"
)

type OfficialLanguage string

const (
	LanguageEnglish OfficialLanguage = "english"
	LanguageFrench  OfficialLanguage = "french"
)

type LanguageScores struct {
	Language  OfficialLanguage `json:"language"`
	Test      LanguageTest     `json:"test"`
	Listening string           `json:"listening"`
	Reading   string           `json:"reading"`
	Writing   string           `json:"writing"`
	Speaking  string           `json:"speaking"`
}

// CLBLevels is a LanguageScores record after conversion to the Canadian
// Language Benchmark.
type CLBLevels struct {
	Listening int `json:"listening"`
	Reading   int `json:"reading"`
	Writing   int `json:"writing"`
	Speaking  int `json:"speaking"`
}

func (c CLBLevels) Min() int {
	m := c.Listening
	for _, v := range []int{c.Reading, c.Writing, c.Speaking} {
		if v < m {
			m = v
		}
	}
	return m
}

func (c CLBLevels) Each() [4]int {
	return [4]int{c.Listening, c.Reading, c.Writing, c.Speaking}
}

type JobOffer string

const (
	JobOfferNone  JobOffer = "none"
	JobOfferTEER0 JobOffer = "teer_00"
	JobOfferOther JobOffer = "other"
)

type CanadianStudy string

const (
	StudyNone       CanadianStudy = "none"
	StudyOneTwoYear CanadianStudy = "one_two_year"
	StudyThreePlus  CanadianStudy = "three_plus"
)

type CRSInput struct {
	Age                        string         `json:"age"`
	Education                  EducationLevel `json:"education"`
	FirstLanguage              LanguageScores `json:"first_language"`
	SecondLanguage             LanguageScores `json:"second_language"`
	CanadianWorkYears          string         `json:"canadian_work_years"`
	ForeignWorkYears           string         `json:"foreign_work_years"`
	CertificateOfQualification bool           `json:"certificate_of_qualification"`

	HasSpouse               bool           `json:"has_spouse"`
	SpouseEducation         EducationLevel `json:"spouse_education"`
	SpouseLanguage          LanguageScores `json:"spouse_language"`
	SpouseCanadianWorkYears string         `json:"spouse_canadian_work_years"`

	ProvincialNomination bool          `json:"provincial_nomination"`
	JobOffer             JobOffer      `json:"job_offer"`
	CanadianStudy        CanadianStudy `json:"canadian_study"`
	SiblingInCanada      bool          `json:"sibling_in_canada"`
}

type CRSCore struct {
	Age            int `json:"age"`
	Education      int `json:"education"`
	FirstLanguage  int `json:"first_language"`
	SecondLanguage int `json:"second_language"`
	CanadianWork   int `json:"canadian_work"`
	Total          int `json:"total"`
}

type CRSSpouse struct {
	Education    int `json:"education"`
	Language     int `json:"language"`
	CanadianWork int `json:"canadian_work"`
	Total        int `json:"total"`
}

type CRSTransferability struct {
	EducationLanguage     int `json:"education_language"`
	EducationCanadianWork int `json:"education_canadian_work"`
	EducationSubtotal     int `json:"education_subtotal"`
	ForeignWorkLanguage   int `json:"foreign_work_language"`
	ForeignCanadianWork   int `json:"foreign_canadian_work"`
	ForeignWorkSubtotal   int `json:"foreign_work_subtotal"`
	Certificate           int `json:"certificate"`
	Total                 int `json:"total"`
}

type CRSAdditional struct {
	ProvincialNomination int `json:"provincial_nomination"`
	JobOffer             int `json:"job_offer"`
	CanadianStudy        int `json:"canadian_study"`
	Sibling              int `json:"sibling"`
	French               int `json:"french"`
	Total                int `json:"total"`
}

type CRSResult struct {
	FirstLanguageCLB     CLBLevels          `json:"first_language_clb"`
	SecondLanguageCLB    CLBLevels          `json:"second_language_clb"`
	Core                 CRSCore            `json:"core"`
	Spouse               CRSSpouse          `json:"spouse"`
	SkillTransferability CRSTransferability `json:"skill_transferability"`
	Additional           CRSAdditional      `json:"additional"`
	Total                int                `json:"total"`
}

type FSWPInput struct {
	Age                string         `json:"age"`
	Education          EducationLevel `json:"education"`
	FirstLanguage      LanguageScores `json:"first_language"`
	SecondLanguage     LanguageScores `json:"second_language"`
	WorkYears          string         `json:"work_years"`
	ArrangedEmployment bool           `json:"arranged_employment"`

	SpouseLanguageCLB4 bool `json:"spouse_language_clb4"`
	PastStudyInCanada  bool `json:"past_study_in_canada"`
	SpousePastStudy    bool `json:"spouse_past_study"`
	PastWorkInCanada   bool `json:"past_work_in_canada"`
	SpousePastWork     bool `json:"spouse_past_work"`
	RelativeInCanada   bool `json:"relative_in_canada"`
}

type FSWPResult struct {
	FirstLanguageCLB   CLBLevels `json:"first_language_clb"`
	Language           int       `json:"language"`
	Education          int       `json:"education"`
	Experience         int       `json:"experience"`
	Age                int       `json:"age"`
	ArrangedEmployment int       `json:"arranged_employment"`
	Adaptability       int       `json:"adaptability"`
	Total              int       `json:"total"`
	PassMark           int       `json:"pass_mark"`
	Eligible           bool      `json:"eligible"`
}
