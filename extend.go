package llc

// extendMatch grows the chunk anchored at pos one rune at a time. At each
// new length it keeps only the duplicates whose substring still matches the
// anchor's, and accepts the longer chunk while that surviving set is at
// least as large as the previous one and non-empty. It returns the last
// accepted chunk together with the duplicates surviving at that length.
//
// This greedily favors length as long as it costs no occurrences; it does
// not try to maximize saved size exactly. Substrings running past the end
// of text compare by their clamped contents, so a shorter tail never
// matches a full-length candidate.
func extendMatch(text []rune, pos int, dups []int, baseLen int) ([]rune, []int) {
	chunk := clamp(text, pos, baseLen)
	accepted := dups
	prev := 0
	for n := baseLen + 1; ; n++ {
		cand := clamp(text, pos, n)
		var survivors []int
		for _, d := range dups {
			if runesEqual(clamp(text, d, n), cand) {
				survivors = append(survivors, d)
			}
		}
		if len(survivors) < prev || len(survivors) == 0 {
			return chunk, accepted
		}
		chunk = cand
		accepted = survivors
		prev = len(survivors)
		dups = survivors
	}
}

// clamp slices n runes starting at pos, stopping at the end of text.
func clamp(text []rune, pos, n int) []rune {
	end := pos + n
	if end > len(text) {
		end = len(text)
	}
	return text[pos:end]
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
