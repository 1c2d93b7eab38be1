package llc

import "unicode"

const (
	// keyOrigin is the first key issued in ModeBytes, directly after the
	// reserved sentinels.
	keyOrigin = KeyPrefix + 1

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogateLen = surrogateMax - surrogateMin + 1
)

// symbolKey returns the key for dictionary entry n in the given mode. Keys
// are a pure function of (mode, n), so repeated runs allocate identically:
// ModeBytes ascends from keyOrigin, ModeChars descends from unicode.MaxRune
// down to symbolFloor. The ascending walk skips the surrogate block, which
// Go strings cannot carry as UTF-8; the descending walk exhausts long
// before reaching it.
func symbolKey(m Mode, n int) (rune, error) {
	if m == ModeBytes {
		k := keyOrigin + rune(n)
		if k >= surrogateMin {
			k += surrogateLen
		}
		if k > unicode.MaxRune {
			return 0, ErrSymbolSpaceExhausted
		}
		return k, nil
	}
	k := unicode.MaxRune - rune(n)
	if k < symbolFloor {
		return 0, ErrSymbolSpaceExhausted
	}
	return k, nil
}
