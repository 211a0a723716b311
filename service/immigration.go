package service

import (
	"calc-suite/domain"
	"calc-suite/reference"
)

const maxAge = 120

// languageCLB converts test results to CLB levels. CLB and CELPIP scores are
// read directly; IELTS band scores go through the per-ability tables.
func languageCLB(scores domain.LanguageScores) domain.CLBLevels {
	if scores.Test == domain.TestIELTS {
		return domain.CLBLevels{
			Listening: reference.IELTSListeningCLB(clamp(ParseNumber(scores.Listening), 0, 9)),
			Reading:   reference.IELTSReadingCLB(clamp(ParseNumber(scores.Reading), 0, 9)),
			Writing:   reference.IELTSWritingCLB(clamp(ParseNumber(scores.Writing), 0, 9)),
			Speaking:  reference.IELTSSpeakingCLB(clamp(ParseNumber(scores.Speaking), 0, 9)),
		}
	}
	return domain.CLBLevels{
		Listening: parseWhole(scores.Listening, reference.MaxCLB),
		Reading:   parseWhole(scores.Reading, reference.MaxCLB),
		Writing:   parseWhole(scores.Writing, reference.MaxCLB),
		Speaking:  parseWhole(scores.Speaking, reference.MaxCLB),
	}
}

// officialLanguages resolves which record is English and which is French.
// The first language defaults to English and the second to the other one.
func officialLanguages(first, second domain.LanguageScores) (english, french domain.CLBLevels) {
	if first.Language == domain.LanguageFrench {
		return languageCLB(second), languageCLB(first)
	}
	return languageCLB(first), languageCLB(second)
}

// DeriveCRS computes an Express Entry Comprehensive Ranking System score.
func DeriveCRS(input domain.CRSInput) domain.CRSResult {
	age := parseWhole(input.Age, maxAge)
	withSpouse := input.HasSpouse
	first := languageCLB(input.FirstLanguage)
	second := languageCLB(input.SecondLanguage)
	canadianYears := parseWhole(input.CanadianWorkYears, MaxCountedYears)
	foreignYears := parseWhole(input.ForeignWorkYears, MaxCountedYears)

	result := domain.CRSResult{
		FirstLanguageCLB:  first,
		SecondLanguageCLB: second,
	}

	core := &result.Core
	core.Age = reference.CRSAge(age, withSpouse)
	core.Education = reference.CRSEducation(input.Education, withSpouse)
	for _, clb := range first.Each() {
		core.FirstLanguage += reference.CRSFirstLanguage(clb, withSpouse)
	}
	for _, clb := range second.Each() {
		core.SecondLanguage += reference.CRSSecondLanguage(clb)
	}
	secondCap := reference.CRSSecondLanguageMaxSingle
	if withSpouse {
		secondCap = reference.CRSSecondLanguageMaxSpouse
	}
	core.SecondLanguage = min(core.SecondLanguage, secondCap)
	core.CanadianWork = reference.CRSCanadianWork(canadianYears, withSpouse)
	core.Total = core.Age + core.Education + core.FirstLanguage + core.SecondLanguage + core.CanadianWork

	if withSpouse {
		spouse := &result.Spouse
		spouse.Education = reference.CRSSpouseEducation(input.SpouseEducation)
		for _, clb := range languageCLB(input.SpouseLanguage).Each() {
			spouse.Language += reference.CRSSpouseLanguage(clb)
		}
		spouse.CanadianWork = reference.CRSSpouseCanadianWork(parseWhole(input.SpouseCanadianWorkYears, MaxCountedYears))
		spouse.Total = min(spouse.Education+spouse.Language+spouse.CanadianWork, reference.CRSSpouseMax)
	}

	minCLB := first.Min()
	st := &result.SkillTransferability
	st.EducationLanguage = reference.CRSEducationLanguage(input.Education, minCLB)
	st.EducationCanadianWork = reference.CRSEducationCanadianWork(input.Education, canadianYears)
	st.EducationSubtotal = min(st.EducationLanguage+st.EducationCanadianWork, reference.CRSTransferabilitySubtotal)
	st.ForeignWorkLanguage = reference.CRSForeignWorkLanguage(foreignYears, minCLB)
	st.ForeignCanadianWork = reference.CRSForeignCanadianWork(foreignYears, canadianYears)
	st.ForeignWorkSubtotal = min(st.ForeignWorkLanguage+st.ForeignCanadianWork, reference.CRSTransferabilitySubtotal)
	st.Certificate = reference.CRSCertificate(input.CertificateOfQualification, minCLB)
	st.Total = min(st.EducationSubtotal+st.ForeignWorkSubtotal+st.Certificate, reference.CRSTransferabilityMax)

	add := &result.Additional
	if input.ProvincialNomination {
		add.ProvincialNomination = reference.CRSProvincialNomination
	}
	add.JobOffer = reference.CRSJobOffer(input.JobOffer)
	add.CanadianStudy = reference.CRSCanadianStudy(input.CanadianStudy)
	if input.SiblingInCanada {
		add.Sibling = reference.CRSSibling
	}
	english, french := officialLanguages(input.FirstLanguage, input.SecondLanguage)
	add.French = reference.CRSFrench(french.Min(), english.Min())
	add.Total = min(add.ProvincialNomination+add.JobOffer+add.CanadianStudy+add.Sibling+add.French, reference.CRSAdditionalMax)

	result.Total = min(core.Total+result.Spouse.Total+st.Total+add.Total, reference.CRSMaxTotal)
	return result
}

// DeriveFSWP scores the Federal Skilled Worker selection grid.
func DeriveFSWP(input domain.FSWPInput) domain.FSWPResult {
	first := languageCLB(input.FirstLanguage)
	second := languageCLB(input.SecondLanguage)
	workYears := parseWhole(input.WorkYears, MaxCountedYears)

	result := domain.FSWPResult{
		FirstLanguageCLB: first,
		PassMark:         reference.FSWPPassMark,
	}
	for _, clb := range first.Each() {
		result.Language += reference.FSWPFirstLanguage(clb)
	}
	if second.Min() >= 5 {
		result.Language += reference.FSWPSecondLanguage
	}
	result.Education = reference.FSWPEducation(input.Education)
	result.Experience = reference.FSWPExperience(workYears)
	result.Age = reference.FSWPAge(parseWhole(input.Age, maxAge))
	if input.ArrangedEmployment {
		result.ArrangedEmployment = reference.FSWPArrangedEmployment
	}

	adaptability := 0
	for _, factor := range []struct {
		present bool
		points  int
	}{
		{input.SpouseLanguageCLB4, reference.FSWPAdaptSpouseLanguage},
		{input.PastStudyInCanada, reference.FSWPAdaptPastStudy},
		{input.SpousePastStudy, reference.FSWPAdaptSpousePastStudy},
		{input.PastWorkInCanada, reference.FSWPAdaptPastWork},
		{input.SpousePastWork, reference.FSWPAdaptSpousePastWork},
		{input.ArrangedEmployment, reference.FSWPAdaptArrangedEmployment},
		{input.RelativeInCanada, reference.FSWPAdaptRelative},
	} {
		if factor.present {
			adaptability += factor.points
		}
	}
	result.Adaptability = min(adaptability, reference.FSWPAdaptabilityMax)

	result.Total = result.Language + result.Education + result.Experience +
		result.Age + result.ArrangedEmployment + result.Adaptability
	result.Eligible = result.Total >= reference.FSWPPassMark &&
		first.Min() >= reference.FSWPMinimumCLB &&
		workYears >= 1
	return result
}
