package service

import (
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"calc-suite/domain"
	"calc-suite/reference"
)

// ShakespeareanScheme is the rhyme scheme GenerateSonnet lays out.
const ShakespeareanScheme = "ABAB CDCD EFEF GG"

const (
	sonnetLines      = 14
	sonnetRhymePairs = 7
)

// GenerateSonnet assembles a Shakespearean sonnet from the theme's rhyme
// bank. The same theme and seed always produce the same poem. Unknown themes
// fall back to the default theme. Every bank holds at least seven pairs.
func GenerateSonnet(input domain.SonnetInput) domain.SonnetResult {
	theme := strings.ToLower(strings.TrimSpace(input.Theme))
	pairs, ok := reference.SonnetBank(theme)
	if !ok {
		theme = reference.DefaultSonnetTheme
		pairs, _ = reference.SonnetBank(theme)
	}

	rng := rand.New(rand.NewPCG(xxhash.Sum64String(theme), xxhash.Sum64String(input.Seed)))
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	pairs = pairs[:sonnetRhymePairs]

	result := domain.SonnetResult{
		Title:       sonnetTitle(input.Title, theme),
		Theme:       theme,
		Lines:       make([]domain.SonnetLine, 0, sonnetLines),
		Approximate: true,
	}

	add := func(text, letter string) {
		line := domain.SonnetLine{
			Text:        text,
			Syllables:   CountLineSyllables(text),
			RhymeTail:   RhymeTail(LastWord(text)),
			RhymeLetter: letter,
		}
		result.TotalSyllables += line.Syllables
		result.Lines = append(result.Lines, line)
	}

	// three alternating quatrains, then the closing couplet
	for q := 0; q < sonnetRhymePairs-1; q += 2 {
		a, b := pairs[q], pairs[q+1]
		la, lb := rhymeLetter(q), rhymeLetter(q+1)
		add(a.First, la)
		add(b.First, lb)
		add(a.Second, la)
		add(b.Second, lb)
	}
	couplet := pairs[sonnetRhymePairs-1]
	add(couplet.First, rhymeLetter(sonnetRhymePairs-1))
	add(couplet.Second, rhymeLetter(sonnetRhymePairs-1))

	letters := make([]string, len(result.Lines))
	for i, line := range result.Lines {
		letters[i] = line.RhymeLetter
	}
	result.Scheme = formatScheme(letters)
	return result
}

func sonnetTitle(title, theme string) string {
	caser := cases.Title(language.English)
	if t := strings.TrimSpace(title); t != "" {
		return caser.String(t)
	}
	return "A Sonnet of " + caser.String(theme)
}

// AnalyzeSonnet reports approximate syllable counts and the rhyme scheme of
// a poem, one line per non-blank line of text.
func AnalyzeSonnet(input domain.SonnetAnalysisInput) domain.SonnetAnalysis {
	analysis := domain.SonnetAnalysis{
		Lines:       []domain.SonnetLine{},
		Approximate: true,
	}

	var lastWords []string
	for _, raw := range strings.Split(strings.ReplaceAll(input.Text, "\r\n", "\n"), "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		last := LastWord(text)
		lastWords = append(lastWords, last)
		line := domain.SonnetLine{
			Text:      text,
			Syllables: CountLineSyllables(text),
			RhymeTail: RhymeTail(last),
		}
		if abs(line.Syllables-PentameterSyllables) <= 1 {
			analysis.PentameterLines++
		}
		analysis.Lines = append(analysis.Lines, line)
	}

	letters := assignRhymeLetters(lastWords)
	for i := range analysis.Lines {
		analysis.Lines[i].RhymeLetter = letters[i]
	}
	analysis.LineCount = len(analysis.Lines)
	analysis.Scheme = formatScheme(letters)
	analysis.Shakespearean = analysis.LineCount == sonnetLines && analysis.Scheme == ShakespeareanScheme
	return analysis
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
