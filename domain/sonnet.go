package domain

type SonnetInput struct {
	Theme string `json:"theme"`
	Seed  string `json:"seed"`
	Title string `json:"title"`
}

type SonnetAnalysisInput struct {
	Text string `json:"text"`
}

// SonnetLine carries the approximate metrics of one line. Syllables and
// rhyme letters come from spelling heuristics, not pronunciation.
type SonnetLine struct {
	Text        string `json:"text"`
	Syllables   int    `json:"syllables"`
	RhymeTail   string `json:"rhyme_tail"`
	RhymeLetter string `json:"rhyme_letter"`
}

type SonnetResult struct {
	Title          string       `json:"title"`
	Theme          string       `json:"theme"`
	Lines          []SonnetLine `json:"lines"`
	Scheme         string       `json:"scheme"`
	TotalSyllables int          `json:"total_syllables"`
	Approximate    bool         `json:"approximate"`
}

type SonnetAnalysis struct {
	Lines           []SonnetLine `json:"lines"`
	LineCount       int          `json:"line_count"`
	Scheme          string       `json:"scheme"`
	PentameterLines int          `json:"pentameter_lines"`
	Shakespearean   bool         `json:"shakespearean"`
	Approximate     bool         `json:"approximate"`
}
