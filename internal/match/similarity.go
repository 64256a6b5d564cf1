package match

// MinDescriptionSimilarity is the lowest description similarity that
// produces a candidate.
const MinDescriptionSimilarity = 0.7

// DescriptionConfidence maps a description similarity score in [0.7, 1]
// onto a confidence in [0.6, 0.7].
func DescriptionConfidence(score float64) float64 {
	return ConfidenceDescriptionFloor + (score-MinDescriptionSimilarity)/3
}

// Levenshtein computes the edit distance between two strings, counted in
// runes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the row over the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized returns 1 - distance / max(len(a), len(b)),
// so 1.0 means identical.
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// DiceCoefficient returns 2|A∩B| / (|A|+|B|) over the token sets of a and b.
func DiceCoefficient(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	shared := 0

	for t := range setA {
		if setB[t] {
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(setA)+len(setB))
}

// ScoreDescriptions scores two descriptions as the larger of the token
// Dice coefficient and the normalized edit similarity of their normalized
// forms. Empty descriptions score 0.
func ScoreDescriptions(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	return max(DiceCoefficient(Tokenize(a), Tokenize(b)), LevenshteinNormalized(na, nb))
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}

	return set
}
