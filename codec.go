package llc

import (
	"fmt"
	"strings"
)

// Encode serializes a substituted body and its dictionary into a single
// artifact: entries as key ++ chunk joined by EntryDelimiter, then
// Terminator, then the body. An empty dictionary encodes as the body alone,
// mirroring Decode's handling of an all-literal document.
func Encode(body string, dict Dictionary) string {
	if len(dict) == 0 {
		return body
	}
	var b strings.Builder
	for i, e := range dict {
		if i > 0 {
			b.WriteRune(EntryDelimiter)
		}
		b.WriteRune(e.Key)
		b.WriteString(e.Chunk)
	}
	b.WriteRune(Terminator)
	b.WriteString(body)
	return b.String()
}

// DetectMode reports the mode an artifact was produced under, judged by the
// symbol alphabet actually present: only ModeBytes ever writes the
// KeyPrefix sentinel. An artifact with an empty dictionary detects as
// ModeChars, which decodes to the same text under either mode. Callers that
// know the mode out of band should pass it to Decode directly.
func DetectMode(artifact string) Mode {
	if strings.ContainsRune(artifact, KeyPrefix) {
		return ModeBytes
	}
	return ModeChars
}

// Decode reverses Encode for an artifact produced under the given mode.
// The dictionary is replayed newest-first: chunks may contain symbols
// introduced at earlier steps, and walking backward resolves one layer of
// nesting per entry. Malformed artifacts surface as ErrTruncatedEntry,
// ErrMissingTerminator or ErrUnknownSymbol.
func Decode(artifact string, mode Mode) (string, error) {
	dictSection, body, found := strings.Cut(artifact, string(Terminator))
	var dict Dictionary
	if found {
		for _, e := range strings.Split(dictSection, string(EntryDelimiter)) {
			r := []rune(e)
			if len(r) < 2 {
				return "", fmt.Errorf("llc: %w: %q", ErrTruncatedEntry, e)
			}
			dict = append(dict, Entry{Key: r[0], Chunk: string(r[1:])})
		}
	} else {
		body = artifact
	}

	for k := len(dict) - 1; k >= 0; k-- {
		body = strings.ReplaceAll(body, mode.symbolText(dict[k].Key), dict[k].Chunk)
	}

	if err := checkDecoded(body, mode); err != nil {
		return "", err
	}
	return body, nil
}

// checkDecoded verifies that replay resolved everything. Any surviving
// reserved or symbol-alphabet character means the artifact was truncated,
// split on the wrong delimiter, or written under another mode.
func checkDecoded(body string, mode Mode) error {
	for _, r := range body {
		switch {
		case r == EntryDelimiter || r == Terminator:
			return fmt.Errorf("llc: %w", ErrMissingTerminator)
		case r == KeyPrefix:
			return fmt.Errorf("llc: %w: stray %U", ErrUnknownSymbol, r)
		case mode == ModeChars && r >= symbolFloor:
			return fmt.Errorf("llc: %w: %U", ErrUnknownSymbol, r)
		}
	}
	return nil
}
