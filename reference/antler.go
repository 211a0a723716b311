package reference

import "calc-suite/domain"

// RecordMinimums are the entry scores for the Boone and Crockett all-time
// records book and the three-year awards period.
type RecordMinimums struct {
	AllTime float64
	Awards  float64
}

type speciesMinimums struct {
	typical    RecordMinimums
	nonTypical RecordMinimums
}

var antlerMinimums = map[domain.Species]speciesMinimums{
	domain.SpeciesWhitetail: {typical: RecordMinimums{170, 160}, nonTypical: RecordMinimums{195, 185}},
	domain.SpeciesMuleDeer:  {typical: RecordMinimums{190, 180}, nonTypical: RecordMinimums{230, 215}},
	domain.SpeciesCoues:     {typical: RecordMinimums{110, 100}, nonTypical: RecordMinimums{120, 105}},
	domain.SpeciesBlacktail: {typical: RecordMinimums{135, 125}, nonTypical: RecordMinimums{155, 145}},
}

// KnownSpecies reports whether the record book lists minimums for species.
func KnownSpecies(species domain.Species) bool {
	_, ok := antlerMinimums[species]
	return ok
}

// AntlerMinimums returns the minimums for a species and category. Unknown
// species fall back to whitetail.
func AntlerMinimums(species domain.Species, mode domain.ScoringMode) RecordMinimums {
	m, ok := antlerMinimums[species]
	if !ok {
		m = antlerMinimums[domain.SpeciesWhitetail]
	}
	if mode == domain.ModeNonTypical {
		return m.nonTypical
	}
	return m.typical
}
