package usecase

// Similarity computes a normalized textual similarity between two strings using
// the Ratcliff-Obershelp matching-blocks ratio: 2*M / (len(a)+len(b)), where M
// is the total length of recursively matched common blocks. Identical strings
// score 1.0, disjoint strings score near 0, substrings and shared prefixes land
// in between. Pure function, safe for concurrent use.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	matched := matchingBlocks(ra, rb)
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

// matchingBlocks returns the total length of common blocks found by repeatedly
// taking the longest common substring and recursing on both remainders.
func matchingBlocks(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a[:ai], b[:bi])
	total += matchingBlocks(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest common contiguous run between a and b.
// Earliest block in a (then in b) wins ties, keeping results deterministic.
func longestCommonBlock(a, b []rune) (bestA, bestB, bestSize int) {
	// lengths[j] holds the common-run length ending at a[i-1], b[j-1] for the
	// previous row; rolling single-row DP.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestSize {
					bestSize = curr[j]
					bestA = i - curr[j]
					bestB = j - curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return bestA, bestB, bestSize
}
