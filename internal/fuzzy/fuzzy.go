// Package fuzzy provides sequence-matching similarity for the value
// consolidation stage. Ratio implements the Ratcliff-Obershelp difference
// ratio: twice the number of matching characters over the total length,
// where matches are counted greedily around the longest common substring.
package fuzzy

// Ratio returns the similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingChars(ra, rb)) / float64(total)
}

// ClosestMatch returns the option most similar to s with ratio >= cutoff.
// Ties keep the earlier option. ok is false when nothing clears the cutoff.
func ClosestMatch(s string, options []string, cutoff float64) (match string, ok bool) {
	best := cutoff
	for _, opt := range options {
		r := Ratio(s, opt)
		if r > best || (!ok && r >= cutoff) {
			match, ok, best = opt, true, r
		}
	}
	return match, ok
}

// matchingChars counts matching characters by finding the longest common
// substring and recursing on the pieces to its left and right.
func matchingChars(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommon(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommon finds the leftmost longest common substring of a and b.
func longestCommon(a, b []rune) (ai, bi, size int) {
	// prev[j+1] = length of the common suffix ending at a[i-1], b[j].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > size {
					size = cur[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
