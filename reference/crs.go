package reference

import "calc-suite/domain"

// Comprehensive Ranking System point grids. Every core table comes in two
// flavours: the applicant alone, and the applicant with an accompanying
// spouse or common-law partner.

const (
	CRSCoreMaxSingle           = 500
	CRSCoreMaxWithSpouse       = 460
	CRSSecondLanguageMaxSingle = 24
	CRSSecondLanguageMaxSpouse = 22
	CRSSpouseMax               = 40
	CRSTransferabilitySubtotal = 50
	CRSTransferabilityMax      = 100
	CRSAdditionalMax           = 600
	CRSMaxTotal                = 1200
	CRSProvincialNomination    = 600
	CRSSibling                 = 15
)

type crsPair struct {
	single     int
	withSpouse int
}

func (p crsPair) pick(withSpouse bool) int {
	if withSpouse {
		return p.withSpouse
	}
	return p.single
}

var crsAge = steps(
	at(45, crsPair{0, 0}),
	at(44, crsPair{6, 5}),
	at(43, crsPair{17, 15}),
	at(42, crsPair{28, 25}),
	at(41, crsPair{39, 35}),
	at(40, crsPair{50, 45}),
	at(39, crsPair{55, 50}),
	at(38, crsPair{61, 55}),
	at(37, crsPair{66, 60}),
	at(36, crsPair{72, 65}),
	at(35, crsPair{77, 70}),
	at(34, crsPair{83, 75}),
	at(33, crsPair{88, 80}),
	at(32, crsPair{94, 85}),
	at(31, crsPair{99, 90}),
	at(30, crsPair{105, 95}),
	at(20, crsPair{110, 100}),
	at(19, crsPair{105, 95}),
	at(18, crsPair{99, 90}),
)

// CRSAge returns age points. Applicants under 18 score nothing.
func CRSAge(age int, withSpouse bool) int {
	return Lookup(crsAge, float64(age), crsPair{}).pick(withSpouse)
}

var crsEducation = map[domain.EducationLevel]crsPair{
	domain.EducationNone:      {0, 0},
	domain.EducationSecondary: {30, 28},
	domain.EducationOneYear:   {90, 84},
	domain.EducationTwoYear:   {98, 91},
	domain.EducationBachelors: {120, 112},
	domain.EducationTwoOrMore: {128, 119},
	domain.EducationMasters:   {135, 126},
	domain.EducationDoctoral:  {150, 140},
}

func CRSEducation(level domain.EducationLevel, withSpouse bool) int {
	return crsEducation[level].pick(withSpouse)
}

// points per ability in the first official language
var crsFirstLanguage = steps(
	at(10, crsPair{34, 32}),
	at(9, crsPair{31, 29}),
	at(8, crsPair{23, 22}),
	at(7, crsPair{17, 16}),
	at(6, crsPair{9, 8}),
	at(4, crsPair{6, 6}),
)

func CRSFirstLanguage(clb int, withSpouse bool) int {
	return Lookup(crsFirstLanguage, float64(clb), crsPair{}).pick(withSpouse)
}

// points per ability in the second official language, same with or without
// a spouse; only the cap differs
var crsSecondLanguage = steps(
	at(9, 6),
	at(7, 3),
	at(5, 1),
)

func CRSSecondLanguage(clb int) int {
	return Lookup(crsSecondLanguage, float64(clb), 0)
}

var crsCanadianWork = steps(
	at(5, crsPair{80, 70}),
	at(4, crsPair{70, 63}),
	at(3, crsPair{64, 56}),
	at(2, crsPair{53, 46}),
	at(1, crsPair{40, 35}),
)

func CRSCanadianWork(years int, withSpouse bool) int {
	return Lookup(crsCanadianWork, float64(years), crsPair{}).pick(withSpouse)
}

var crsSpouseEducation = map[domain.EducationLevel]int{
	domain.EducationNone:      0,
	domain.EducationSecondary: 2,
	domain.EducationOneYear:   6,
	domain.EducationTwoYear:   7,
	domain.EducationBachelors: 8,
	domain.EducationTwoOrMore: 9,
	domain.EducationMasters:   10,
	domain.EducationDoctoral:  10,
}

func CRSSpouseEducation(level domain.EducationLevel) int {
	return crsSpouseEducation[level]
}

var crsSpouseLanguage = steps(
	at(9, 5),
	at(7, 3),
	at(5, 1),
)

func CRSSpouseLanguage(clb int) int {
	return Lookup(crsSpouseLanguage, float64(clb), 0)
}

var crsSpouseCanadianWork = steps(
	at(5, 10),
	at(4, 9),
	at(3, 8),
	at(2, 7),
	at(1, 5),
)

func CRSSpouseCanadianWork(years int) int {
	return Lookup(crsSpouseCanadianWork, float64(years), 0)
}

// Skill transferability. Each combination pays a "good" amount and a "strong"
// amount depending on how far the second factor goes.

type transferTier int

const (
	tierNone transferTier = iota
	tierGood
	tierStrong
)

// educationTier splits credentials into none, one post-secondary credential
// and two-or-more / graduate credentials.
func educationTier(level domain.EducationLevel) transferTier {
	switch level {
	case domain.EducationOneYear, domain.EducationTwoYear, domain.EducationBachelors:
		return tierGood
	case domain.EducationTwoOrMore, domain.EducationMasters, domain.EducationDoctoral:
		return tierStrong
	default:
		return tierNone
	}
}

var transferPoints = map[transferTier][3]int{
	// second factor: none, good, strong
	tierNone:   {0, 0, 0},
	tierGood:   {0, 13, 25},
	tierStrong: {0, 25, 50},
}

func languageTier(minCLB int) transferTier {
	switch {
	case minCLB >= 9:
		return tierStrong
	case minCLB >= 7:
		return tierGood
	default:
		return tierNone
	}
}

func canadianWorkTier(years int) transferTier {
	switch {
	case years >= 2:
		return tierStrong
	case years >= 1:
		return tierGood
	default:
		return tierNone
	}
}

func foreignWorkTier(years int) transferTier {
	switch {
	case years >= 3:
		return tierStrong
	case years >= 1:
		return tierGood
	default:
		return tierNone
	}
}

// CRSEducationLanguage scores education combined with the lowest first
// official language ability.
func CRSEducationLanguage(level domain.EducationLevel, minCLB int) int {
	return transferPoints[educationTier(level)][languageTier(minCLB)]
}

func CRSEducationCanadianWork(level domain.EducationLevel, canadianYears int) int {
	return transferPoints[educationTier(level)][canadianWorkTier(canadianYears)]
}

func CRSForeignWorkLanguage(foreignYears, minCLB int) int {
	return transferPoints[foreignWorkTier(foreignYears)][languageTier(minCLB)]
}

func CRSForeignCanadianWork(foreignYears, canadianYears int) int {
	return transferPoints[foreignWorkTier(foreignYears)][canadianWorkTier(canadianYears)]
}

// CRSCertificate scores a certificate of qualification in a trade against
// the lowest first official language ability.
func CRSCertificate(hasCertificate bool, minCLB int) int {
	switch {
	case !hasCertificate:
		return 0
	case minCLB >= 7:
		return 50
	case minCLB >= 5:
		return 25
	default:
		return 0
	}
}

var crsJobOffer = map[domain.JobOffer]int{
	domain.JobOfferNone:  0,
	domain.JobOfferTEER0: 200,
	domain.JobOfferOther: 50,
}

func CRSJobOffer(offer domain.JobOffer) int {
	return crsJobOffer[offer]
}

var crsCanadianStudy = map[domain.CanadianStudy]int{
	domain.StudyNone:       0,
	domain.StudyOneTwoYear: 15,
	domain.StudyThreePlus:  30,
}

func CRSCanadianStudy(study domain.CanadianStudy) int {
	return crsCanadianStudy[study]
}

// CRSFrench scores strong French (NCLC 7 in every ability) paired with the
// applicant's English level.
func CRSFrench(frenchMinCLB, englishMinCLB int) int {
	switch {
	case frenchMinCLB < 7:
		return 0
	case englishMinCLB >= 5:
		return 50
	default:
		return 25
	}
}
