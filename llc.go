// Package llc implements a recursive lossless text codec.
//
// The codec finds repeated substrings ("chunks") in a document and replaces
// every occurrence with a single-character symbol drawn from a reserved
// region of the code-point space. Each substitution is recorded in an
// ordered dictionary that is serialized ahead of the substituted text, and
// substitution repeats on the already-substituted text for as long as it
// keeps paying for itself. Decoding replays the dictionary newest-first.
//
// Artifact layout:
//
//	entry(0) ++ EntryDelimiter ++ entry(1) ++ ... ++ Terminator ++ body
//
// where each entry is the symbol key character followed by the chunk it
// stands for. An empty dictionary encodes as the body alone, with no
// terminator.
//
// Two modes trade off the same algorithm. ModeBytes minimizes encoded byte
// length: symbols appear in the text as a two-character sequence (KeyPrefix
// followed by the key) and chunks of 3+ runes are considered. ModeChars
// minimizes character count: symbols are bare single characters allocated
// downward from U+10FFFF, and chunks of 2+ runes are considered. The mode
// must match between Compress and Decode.
package llc

import "unicode/utf8"

// Reserved characters. Input text must not contain them; Compress rejects
// it up front rather than producing a corrupt artifact.
const (
	Terminator     = '\x00' // separates the dictionary section from the body
	EntryDelimiter = '\x01' // separates consecutive dictionary entries
	KeyPrefix      = '\x02' // sentinel before each in-text key in ModeBytes
)

// symbolFloor is the bottom of the reserved symbol region for ModeChars:
// all of Unicode plane 16. ModeChars input containing plane-16 runes is
// rejected, since bare symbols would be indistinguishable from it.
const symbolFloor = '\U00100000'

// A Mode selects which size unit compression optimizes and how symbols are
// written into the text.
type Mode int

const (
	// ModeBytes prioritizes encoded byte length.
	ModeBytes Mode = iota
	// ModeChars prioritizes encoded character count.
	ModeChars
)

func (m Mode) String() string {
	switch m {
	case ModeBytes:
		return "bytes"
	case ModeChars:
		return "chars"
	}
	return "invalid"
}

// baseChunkLen is the smallest chunk length worth indexing. It must exceed
// the in-text symbol footprint, or a symbol could match itself and
// substitution would never terminate.
func (m Mode) baseChunkLen() int {
	if m == ModeBytes {
		return 3
	}
	return 2
}

// symbolText returns the form a symbol takes in the substituted text.
func (m Mode) symbolText(key rune) string {
	if m == ModeBytes {
		return string([]rune{KeyPrefix, key})
	}
	return string(key)
}

// size measures s in the unit the mode optimizes.
func (m Mode) size(s string) int {
	if m == ModeBytes {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}

// An Entry maps a single-character symbol key to the chunk it replaced.
type Entry struct {
	Key   rune
	Chunk string
}

// A Dictionary is the ordered list of substitutions made during one
// compression run. Order is insertion order and is load-bearing: a chunk
// may contain keys introduced at earlier steps, never later ones, so
// replaying entries newest-first resolves one layer of nesting per entry.
type Dictionary []Entry
