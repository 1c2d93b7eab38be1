package llc

import "fmt"

// A Result carries the outcome of one compression run.
type Result struct {
	Artifact string     // serialized dictionary and body; what Decode consumes
	Body     string     // substituted text
	Dict     Dictionary // substitutions in insertion order
	// Ratio is the fractional size reduction of the artifact versus the
	// input, measured in the mode's unit. It is never negative: a run
	// whose every substitution grows the output returns the input
	// untouched with a ratio of zero.
	Ratio float64
	// Depth is how many substitution steps the search explored, which can
	// exceed len(Dict) when trailing steps were rejected.
	Depth int
	// DepthRaises counts how many times the depth budget was raised.
	DepthRaises int
}

// step is one substitution applied during the descent: the text and
// dictionary after it, plus the ratio of its encoded artifact.
type step struct {
	text  []rune
	dict  Dictionary
	ratio float64
}

// Compress runs the substitution search over text. A nil opts means
// DefaultOptions().
//
// On symbol-space exhaustion the best result found before running out is
// returned together with ErrSymbolSpaceExhausted, so callers can keep the
// partial compression or treat it as fatal as they see fit. All other
// errors return a nil Result.
func Compress(text string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	mode := opts.Mode
	if err := checkReserved(text, mode); err != nil {
		return nil, err
	}

	input := []rune(text)
	origSize := mode.size(text)

	limit := opts.MaxDepth
	if limit <= 0 {
		limit = DefaultOptions().MaxDepth
	}
	raises := 0

	// Descend: apply one substitution at a time, recording every
	// intermediate candidate. This is the recursion of the algorithm
	// flattened into a work list; each element is what one recursive call
	// produces before handing off to the next.
	var steps []step
	cur := input
	var dict Dictionary
	var exhausted error
	for {
		if len(steps) >= limit {
			// Raise the budget one step and retry, like bumping a
			// recursion limit.
			limit++
			raises++
		}
		next, ndict, ok, err := substituteOnce(cur, dict, mode)
		if err != nil {
			exhausted = err
			break
		}
		if !ok {
			break // fixed point: nothing left to substitute
		}
		r := savings(origSize, mode.size(Encode(string(next), ndict)))
		steps = append(steps, step{next, ndict, r})
		cur, dict = next, ndict
	}

	// Unwind: the deepest invocation found nothing to substitute and
	// returned its input unchanged; walk back up comparing each level's
	// stop-here candidate against the best deeper one.
	best := step{text: input}
	if n := len(steps); n > 0 {
		best = steps[n-1]
	}
	for k := len(steps) - 1; k >= 0; k-- {
		s := steps[k]
		if s.ratio < 0 && best.ratio < 0 {
			// Neither this substitution nor anything beyond it pays off;
			// fall back to the state before it.
			if k > 0 {
				best = steps[k-1]
			} else {
				best = step{text: input}
			}
			continue
		}
		if s.ratio >= best.ratio {
			// Ties favor stopping here: same text, smaller dictionary.
			best = s
		}
	}

	body := string(best.text)
	artifact := Encode(body, best.dict)
	return &Result{
		Artifact:    artifact,
		Body:        body,
		Dict:        best.dict,
		Ratio:       savings(origSize, mode.size(artifact)),
		Depth:       len(steps),
		DepthRaises: raises,
	}, exhausted
}

// substituteOnce performs a single substitution step: it finds the first
// anchor in text order whose base-length chunk occurs elsewhere, extends
// the chunk, and replaces every occurrence with the next symbol. ok is
// false at a fixed point. The caller's text and dict are left untouched.
func substituteOnce(text []rune, dict Dictionary, mode Mode) (out []rune, ndict Dictionary, ok bool, err error) {
	base := mode.baseChunkLen()
	idx := chunkIndex(text, base)
	for i := 0; i+base <= len(text); i++ {
		var dups []int
		for _, p := range idx[string(text[i:i+base])] {
			if p != i {
				dups = append(dups, p)
			}
		}
		if len(dups) == 0 {
			continue
		}

		chunk, _ := extendMatch(text, i, dups, base)
		key, err := symbolKey(mode, len(dict))
		if err != nil {
			return nil, nil, false, err
		}
		ndict = make(Dictionary, len(dict), len(dict)+1)
		copy(ndict, dict)
		ndict = append(ndict, Entry{Key: key, Chunk: string(chunk)})
		return replaceAll(text, chunk, []rune(mode.symbolText(key))), ndict, true, nil
	}
	return text, dict, false, nil
}

// replaceAll substitutes repl for every left-to-right, non-overlapping
// occurrence of chunk, returning a fresh slice.
func replaceAll(text, chunk, repl []rune) []rune {
	out := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		if i+len(chunk) <= len(text) && runesEqual(text[i:i+len(chunk)], chunk) {
			out = append(out, repl...)
			i += len(chunk)
		} else {
			out = append(out, text[i])
			i++
		}
	}
	return out
}

// checkReserved rejects text that would corrupt the artifact: the reserved
// control characters in either mode, plus the plane-16 symbol region in
// ModeChars, where symbols appear bare in the body.
func checkReserved(text string, mode Mode) error {
	for i, r := range text {
		reserved := r == Terminator || r == EntryDelimiter || r == KeyPrefix ||
			(mode == ModeChars && r >= symbolFloor)
		if reserved {
			return fmt.Errorf("llc: %w: %U at byte %d", ErrReservedRune, r, i)
		}
	}
	return nil
}

// savings is the fractional size reduction from orig to encoded; negative
// when the encoded form grew.
func savings(orig, encoded int) float64 {
	if orig == 0 {
		return 0
	}
	return float64(orig-encoded) / float64(orig)
}
