package llc

// chunkIndex maps every length-n substring of text to the ascending list of
// rune offsets where it starts. Overlapping occurrences are recorded
// separately.
func chunkIndex(text []rune, n int) map[string][]int {
	idx := make(map[string][]int, len(text))
	for i := 0; i+n <= len(text); i++ {
		chunk := string(text[i : i+n])
		idx[chunk] = append(idx[chunk], i)
	}
	return idx
}
