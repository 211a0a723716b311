package reference

import "calc-suite/domain"

// Federal Skilled Worker selection grid (67 point pass mark).

const (
	FSWPPassMark           = 67
	FSWPMinimumCLB         = 7
	FSWPSecondLanguage     = 4
	FSWPArrangedEmployment = 10
	FSWPAdaptabilityMax    = 10
)

var fswpFirstLanguage = steps(
	at(9, 6),
	at(8, 5),
	at(7, 4),
)

// FSWPFirstLanguage returns points for one ability; below CLB 7 the
// applicant is ineligible and the ability scores nothing.
func FSWPFirstLanguage(clb int) int {
	return Lookup(fswpFirstLanguage, float64(clb), 0)
}

var fswpEducation = map[domain.EducationLevel]int{
	domain.EducationNone:      0,
	domain.EducationSecondary: 5,
	domain.EducationOneYear:   15,
	domain.EducationTwoYear:   19,
	domain.EducationBachelors: 21,
	domain.EducationTwoOrMore: 22,
	domain.EducationMasters:   23,
	domain.EducationDoctoral:  25,
}

func FSWPEducation(level domain.EducationLevel) int {
	return fswpEducation[level]
}

var fswpExperience = steps(
	at(6, 15),
	at(4, 13),
	at(2, 11),
	at(1, 9),
)

func FSWPExperience(years int) int {
	return Lookup(fswpExperience, float64(years), 0)
}

var fswpAge = steps(
	at(47, 0),
	at(46, 1),
	at(45, 2),
	at(44, 3),
	at(43, 4),
	at(42, 5),
	at(41, 6),
	at(40, 7),
	at(39, 8),
	at(38, 9),
	at(37, 10),
	at(36, 11),
	at(18, 12),
)

func FSWPAge(age int) int {
	return Lookup(fswpAge, float64(age), 0)
}

// Adaptability factor points, capped at FSWPAdaptabilityMax in total.
const (
	FSWPAdaptSpouseLanguage     = 5
	FSWPAdaptPastStudy          = 5
	FSWPAdaptSpousePastStudy    = 5
	FSWPAdaptPastWork           = 10
	FSWPAdaptSpousePastWork     = 5
	FSWPAdaptArrangedEmployment = 5
	FSWPAdaptRelative           = 5
)
