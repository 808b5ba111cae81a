package nlp

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords is the closed list of function words removed for keyword
// extraction. Classification and search scoring operate on the full
// token stream.
var stopWords = map[string]bool{
	"the": true, "is": true, "at": true, "which": true, "on": true,
	"a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "with": true, "to": true, "for": true, "of": true,
	"my": true, "i": true, "me": true, "it": true, "its": true,
	"this": true, "that": true, "be": true, "was": true, "are": true,
}

func Normalize(text string) string {
	text = strings.ToLower(text)

	// Apostrophes are dropped, not spaced, so "won't" matches "wont".
	text = strings.NewReplacer("'", "", "’", "").Replace(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Fields(Normalize(text))
}

// Stem reduces a token to its root form. Tokens the stemmer cannot
// handle are returned unchanged.
func Stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}

func StemTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = Stem(token)
	}
	return stemmed
}

func StemText(text string) string {
	return strings.Join(StemTokens(Tokenize(text)), " ")
}

func IsStopWord(token string) bool {
	return stopWords[token]
}

func FilterStopWords(tokens []string) []string {
	var filtered []string
	for _, token := range tokens {
		if !stopWords[token] {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// ExtractKeywords returns up to max unique non-stop-word tokens longer
// than two characters, in first-seen order.
func ExtractKeywords(text string, max int) []string {
	if text == "" || max <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var keywords []string

	for _, token := range Tokenize(text) {
		if len(token) <= 2 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == max {
			break
		}
	}

	return keywords
}

// NGrams returns the n-token windows of tokens joined by spaces.
func NGrams(tokens []string, n int) []string {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}
