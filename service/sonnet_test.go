package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-suite/domain"
	"calc-suite/reference"
)

const sonnet18 = `Shall I compare thee to a summer's day?
Thou art more lovely and more temperate:
Rough winds do shake the darling buds of May,
And summer's lease hath all too short a date;
Sometime too hot the eye of heaven shines,
And often is his gold complexion dimm'd;
And every fair from fair sometime declines,
By chance or nature's changing course untrimm'd;

But thy eternal summer shall not fade,
Nor lose possession of that fair thou ow'st;
Nor shall Death brag thou wander'st in his shade,
When in eternal lines to time thou grow'st:
So long as men can breathe or eyes can see,
So long lives this and this gives life to thee.`

func TestAnalyzeSonnet_Sonnet18(t *testing.T) {
	a := AnalyzeSonnet(domain.SonnetAnalysisInput{Text: sonnet18})

	assert.Equal(t, 14, a.LineCount)
	assert.Equal(t, ShakespeareanScheme, a.Scheme)
	assert.True(t, a.Shakespearean)
	assert.True(t, a.Approximate)
	assert.Equal(t, 10, a.Lines[0].Syllables)
	assert.Equal(t, "A", a.Lines[2].RhymeLetter)
	assert.Positive(t, a.PentameterLines)
}

func TestAnalyzeSonnet_Empty(t *testing.T) {
	a := AnalyzeSonnet(domain.SonnetAnalysisInput{Text: " \n\r\n "})
	assert.Zero(t, a.LineCount)
	assert.Empty(t, a.Scheme)
	assert.False(t, a.Shakespearean)
	assert.NotNil(t, a.Lines)
}

func TestGenerateSonnet(t *testing.T) {
	r := GenerateSonnet(domain.SonnetInput{Theme: "Nature", Seed: "spring"})

	assert.Equal(t, "nature", r.Theme)
	assert.Equal(t, "A Sonnet of Nature", r.Title)
	require.Len(t, r.Lines, 14)
	assert.Equal(t, ShakespeareanScheme, r.Scheme)
	assert.True(t, r.Approximate)

	total := 0
	for _, l := range r.Lines {
		total += l.Syllables
	}
	assert.Equal(t, total, r.TotalSyllables)
	assert.Equal(t, r.Lines[12].RhymeLetter, r.Lines[13].RhymeLetter)
}

func TestGenerateSonnet_Deterministic(t *testing.T) {
	in := domain.SonnetInput{Theme: "time", Seed: "42"}
	assert.Equal(t, GenerateSonnet(in), GenerateSonnet(in))

	first := GenerateSonnet(domain.SonnetInput{Theme: "time", Seed: "a"})
	differs := false
	for _, seed := range []string{"b", "c", "d", "e", "f"} {
		other := GenerateSonnet(domain.SonnetInput{Theme: "time", Seed: seed})
		if other.Lines[0].Text != first.Lines[0].Text || other.Lines[13].Text != first.Lines[13].Text {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds should reorder the poem")
}

func TestGenerateSonnet_UnknownThemeFallsBack(t *testing.T) {
	r := GenerateSonnet(domain.SonnetInput{Theme: "war", Title: "ode to the quiet hour"})
	assert.Equal(t, reference.DefaultSonnetTheme, r.Theme)
	assert.Equal(t, "Ode To The Quiet Hour", r.Title)
}

func TestGeneratedSonnetsAnalyzeAsShakespearean(t *testing.T) {
	for _, theme := range reference.SonnetThemes() {
		for _, seed := range []string{"", "1", "two", "third seed"} {
			r := GenerateSonnet(domain.SonnetInput{Theme: theme, Seed: seed})
			texts := make([]string, len(r.Lines))
			for i, l := range r.Lines {
				texts[i] = l.Text
			}
			a := AnalyzeSonnet(domain.SonnetAnalysisInput{Text: strings.Join(texts, "\n")})
			assert.True(t, a.Shakespearean, "theme %q seed %q: %s", theme, seed, a.Scheme)
		}
	}
}
