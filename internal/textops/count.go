package textops

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed behind ReadingTime.
const WordsPerMinute = 200

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	paragraphSplit = regexp.MustCompile(`\n\n+`)
)

// Stats are the word counter figures.
type Stats struct {
	Words              int
	Characters         int
	CharactersNoSpaces int
	Sentences          int
	Paragraphs         int
	// ReadingTime is in whole minutes, rounded up.
	ReadingTime int
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// Count computes Stats for text. Characters are counted in runes.
func Count(text string) Stats {
	words := len(strings.Fields(text))
	noSpaces := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			noSpaces++
		}
	}
	return Stats{
		Words:              words,
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: noSpaces,
		Sentences:          countNonBlank(sentenceSplit.Split(text, -1)),
		Paragraphs:         countNonBlank(paragraphSplit.Split(text, -1)),
		ReadingTime:        (words + WordsPerMinute - 1) / WordsPerMinute,
	}
}
