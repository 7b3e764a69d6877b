package generators

import (
	"strings"

	fakelish "github.com/nwtgck/go-fakelish"
)

const (
	phraseWordMinLength = 3
	phraseWordMaxLength = 7
)

// GeneratePhrase creates a lower-case confirmation phrase of numWords nonsense words, each
// three (3) to seven (7) letters long. It returns "" for numWords < 1.
func GeneratePhrase(numWords int) string {
	if numWords < 1 {
		return ""
	}

	words := make([]string, numWords)
	for i := range words {
		words[i] = strings.ToLower(fakelish.GenerateFakeWord(phraseWordMinLength, phraseWordMaxLength))
	}

	return strings.Join(words, " ")
}
