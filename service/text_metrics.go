package service

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The metrics in this file are spelling heuristics. They approximate
// syllables and rhyme from letters alone and are wrong for plenty of English
// words; callers present them as estimates.

// foldAccents strips combining marks so "naïve" counts like "naive".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// normalizeWord lowercases a word and keeps only its letters.
func normalizeWord(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(foldAccents(word)) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lineWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r) && r != '\'' && r != '’'
	})
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CountSyllables estimates the syllables in a word as the number of vowel
// groups, less a silent final "e" (but not "le"). Any word with letters has
// at least one syllable.
func CountSyllables(word string) int {
	w := normalizeWord(word)
	if w == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	return max(count, 1)
}

func CountLineSyllables(line string) int {
	total := 0
	for _, word := range lineWords(line) {
		total += CountSyllables(word)
	}
	return total
}

// LastWord returns the normalized final word of a line.
func LastWord(line string) string {
	words := lineWords(line)
	for i := len(words) - 1; i >= 0; i-- {
		if w := normalizeWord(words[i]); w != "" {
			return w
		}
	}
	return ""
}

const rhymeTailLength = 3

// RhymeTail is the ending compared when matching rhymes: the last three
// letters of the word, or the whole word when it is shorter.
func RhymeTail(word string) string {
	w := normalizeWord(word)
	r := []rune(w)
	if len(r) <= rhymeTailLength {
		return w
	}
	return string(r[len(r)-rhymeTailLength:])
}

// Rhymes reports whether two words share an ending: the last three letters,
// or the last two when either word has three letters or fewer.
func Rhymes(a, b string) bool {
	ra := []rune(normalizeWord(a))
	rb := []rune(normalizeWord(b))
	if len(ra) == 0 || len(rb) == 0 {
		return false
	}
	n := rhymeTailLength
	if len(ra) <= rhymeTailLength || len(rb) <= rhymeTailLength {
		n = 2
	}
	n = min(n, len(ra), len(rb))
	return string(ra[len(ra)-n:]) == string(rb[len(rb)-n:])
}

// rhymeLetter names the i-th rhyme group: A..Z, then A1, B1 and so on.
func rhymeLetter(i int) string {
	letter := string(rune('A' + i%26))
	if i >= 26 {
		letter += strconv.Itoa(i / 26)
	}
	return letter
}

// assignRhymeLetters gives each line the letter of the first earlier line
// whose final word rhymes with its own, or a fresh letter.
func assignRhymeLetters(lastWords []string) []string {
	letters := make([]string, len(lastWords))
	groups := 0
	for i, word := range lastWords {
		for j := 0; j < i; j++ {
			if Rhymes(word, lastWords[j]) {
				letters[i] = letters[j]
				break
			}
		}
		if letters[i] == "" {
			letters[i] = rhymeLetter(groups)
			groups++
		}
	}
	return letters
}

// formatScheme joins rhyme letters in groups of four lines.
func formatScheme(letters []string) string {
	var b strings.Builder
	for i, l := range letters {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l)
	}
	return b.String()
}
