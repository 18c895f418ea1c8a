package generate

import (
	"math/rand/v2"
	"strings"
)

// Lorem units.
const (
	UnitParagraphs = "paragraphs"
	UnitSentences  = "sentences"
	UnitWords      = "words"
)

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

// LoremWords returns a copy of the word bank.
func LoremWords() []string {
	return append([]string(nil), loremWords...)
}

// Lorem produces placeholder text.
type Lorem struct {
	rng *rand.Rand
}

// NewLorem uses rng for every draw; nil means a randomly seeded source.
func NewLorem(rng *rand.Rand) *Lorem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Lorem{rng: rng}
}

func (l *Lorem) word() string {
	return loremWords[l.rng.IntN(len(loremWords))]
}

// Sentence is 8-17 words, capitalised, ending with a period.
func (l *Lorem) Sentence() string {
	n := l.rng.IntN(10) + 8
	words := make([]string, n)
	for i := range words {
		words[i] = l.word()
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

// Paragraph is 4-7 sentences.
func (l *Lorem) Paragraph() string {
	n := l.rng.IntN(4) + 4
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = l.Sentence()
	}
	return strings.Join(sentences, " ")
}

// Generate returns count units of the given kind. Unknown units produce words.
// count below 1 is treated as 1.
func (l *Lorem) Generate(unit string, count int) string {
	count = max(count, 1)
	parts := make([]string, count)
	sep := " "
	for i := range parts {
		switch unit {
		case UnitParagraphs:
			parts[i] = l.Paragraph()
			sep = "\n\n"
		case UnitSentences:
			parts[i] = l.Sentence()
		default:
			parts[i] = l.word()
		}
	}
	return strings.Join(parts, sep)
}
