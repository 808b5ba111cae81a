package nlp

import (
	"math"
	"strings"
)

// LevenshteinSimilarity normalizes edit distance into [0,1].
func LevenshteinSimilarity(s1, s2 string) float64 {
	n1 := Normalize(s1)
	n2 := Normalize(s2)

	if n1 == n2 {
		if n1 == "" {
			return 0.0
		}
		return 1.0
	}

	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		shorter, longer := n1, n2
		if len(n1) > len(n2) {
			shorter, longer = n2, n1
		}
		return float64(len(shorter)) / float64(len(longer))
	}

	distance := levenshteinDistance(n1, n2)
	maxLen := math.Max(float64(len(n1)), float64(len(n2)))
	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-float64(distance)/maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}

	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

// JaroWinkler computes Jaro similarity with the Winkler common-prefix
// bonus (scaling 0.1, prefix capped at 4).
func JaroWinkler(s1, s2 string) float64 {
	jaro := jaroSimilarity(s1, s2)
	if jaro == 0 {
		return 0
	}

	prefix := 0
	for i := 0; i < len(s1) && i < len(s2) && i < 4; i++ {
		if s1[i] != s2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1.0-jaro)
}

func jaroSimilarity(s1, s2 string) float64 {
	len1, len2 := len(s1), len(s2)
	if len1 == 0 && len2 == 0 {
		return 1.0
	}
	if len1 == 0 || len2 == 0 {
		return 0.0
	}
	if s1 == s2 {
		return 1.0
	}

	matchWindow := max(len1, len2)/2 - 1
	if matchWindow < 0 {
		matchWindow = 0
	}

	matched1 := make([]bool, len1)
	matched2 := make([]bool, len2)

	matches := 0
	for i := 0; i < len1; i++ {
		start := max(0, i-matchWindow)
		end := min(i+matchWindow+1, len2)
		for j := start; j < end; j++ {
			if matched2[j] || s1[i] != s2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len1) + m/float64(len2) + (m-float64(transpositions)/2)/m) / 3.0
}

// DiceCoefficient measures overlap between the character-bigram sets
// of the two strings.
func DiceCoefficient(s1, s2 string) float64 {
	if s1 == s2 {
		if s1 == "" {
			return 0.0
		}
		return 1.0
	}
	if len(s1) < 2 || len(s2) < 2 {
		return 0.0
	}

	bigrams1 := characterBigrams(s1)
	bigrams2 := characterBigrams(s2)

	intersection := 0
	for bigram, count := range bigrams1 {
		if other, ok := bigrams2[bigram]; ok {
			intersection += min(count, other)
		}
	}

	total := len(s1) - 1 + len(s2) - 1
	return float64(2*intersection) / float64(total)
}

func characterBigrams(s string) map[string]int {
	bigrams := make(map[string]int, len(s))
	for i := 0; i+2 <= len(s); i++ {
		bigrams[s[i:i+2]]++
	}
	return bigrams
}
