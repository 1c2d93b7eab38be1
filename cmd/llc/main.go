// llc - recursive lossless text compressor
//
// Usage:
//
//	llc compress [-mode=bytes|chars] <file>         Compress to compressed/<name>-compressed.llc
//	llc uncompress [-mode=auto|bytes|chars] <file>  Restore a .llc file to uncompressed/<name>-uncompressed.txt
//
// The bytes mode minimizes file size; the chars mode minimizes character
// count. Uncompress detects the mode from the artifact by default.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/08BitPixels/llc"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	modeArg := ""
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case strings.HasPrefix(arg, "-mode="):
			modeArg = strings.TrimPrefix(arg, "-mode=")
		case strings.HasPrefix(arg, "-"):
			fatal("unknown flag: %s", arg)
		default:
			fileArg = arg
		}
	}

	switch cmd {
	case "compress":
		if fileArg == "" {
			fatal("compress: missing file argument")
		}
		cmdCompress(fileArg, modeArg)
	case "uncompress":
		if fileArg == "" {
			fatal("uncompress: missing file argument")
		}
		cmdUncompress(fileArg, modeArg)
	default:
		fmt.Fprintf(os.Stderr, "llc: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func cmdCompress(path, modeArg string) {
	var mode llc.Mode
	switch modeArg {
	case "", "bytes":
		mode = llc.ModeBytes
	case "chars":
		mode = llc.ModeChars
	default:
		fatal("unknown mode %q (want bytes or chars)", modeArg)
	}

	outPath := filepath.Join("compressed", baseName(path)+"-compressed.llc")
	fmt.Printf("\ncompressing %s -> %s (mode: %s)\n", path, outPath, mode)

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read input: %v", err)
	}
	input := string(data)

	res, err := llc.Compress(input, &llc.Options{Mode: mode})
	if err != nil {
		if res == nil {
			fatal("compress: %v", err)
		}
		// Symbol space ran out; keep the partial result.
		fmt.Fprintf(os.Stderr, "llc: warning: %v\n", err)
	}

	if err := writeFile(outPath, res.Artifact); err != nil {
		fatal("write output: %v", err)
	}

	fmt.Printf("completed successfully (%s)\n", time.Since(start).Round(time.Microsecond))
	reportCompress(mode, input, res)
}

func cmdUncompress(path, modeArg string) {
	if filepath.Ext(path) != ".llc" {
		fatal("file %s is not a .llc file", path)
	}

	name := strings.TrimSuffix(baseName(path), "-compressed")
	outPath := filepath.Join("uncompressed", name+"-uncompressed.txt")
	fmt.Printf("\nuncompressing %s -> %s\n", path, outPath)

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read input: %v", err)
	}
	artifact := string(data)

	var mode llc.Mode
	switch modeArg {
	case "", "auto":
		mode = llc.DetectMode(artifact)
		fmt.Printf("detected mode: %s\n", mode)
	case "bytes":
		mode = llc.ModeBytes
	case "chars":
		mode = llc.ModeChars
	default:
		fatal("unknown mode %q (want auto, bytes or chars)", modeArg)
	}

	text, err := llc.Decode(artifact, mode)
	if err != nil {
		if errors.Is(err, llc.ErrTruncatedEntry) || errors.Is(err, llc.ErrMissingTerminator) || errors.Is(err, llc.ErrUnknownSymbol) {
			fatal("%s is corrupt or was compressed under another mode: %v", path, err)
		}
		fatal("uncompress: %v", err)
	}

	if err := writeFile(outPath, text); err != nil {
		fatal("write output: %v", err)
	}

	fmt.Printf("completed successfully (%s)\n", time.Since(start).Round(time.Microsecond))
	reportUncompress(mode, artifact, text)
}

func reportCompress(mode llc.Mode, input string, res *llc.Result) {
	inBytes, inChars := len(input), utf8.RuneCountInString(input)
	outBytes, outChars := len(res.Artifact), utf8.RuneCountInString(res.Artifact)

	fmt.Println("| percentage compression:")
	switch mode {
	case llc.ModeChars:
		if outChars == inChars {
			fmt.Println("| (no character compression found)")
			return
		}
		fmt.Printf("| - chars: %.2f%%\n", pctDecrease(inChars, outChars))
		fmt.Printf("| - (bytes: %.2f%%)\n", pctDecrease(inBytes, outBytes))
		fmt.Println("| number of chars:")
		fmt.Printf("| - original: %d chars\n", inChars)
		fmt.Printf("| - compressed: %d chars\n", outChars)
	default:
		if outBytes == inBytes {
			fmt.Println("| (no byte compression found)")
			return
		}
		fmt.Printf("| - bytes: %.2f%%\n", pctDecrease(inBytes, outBytes))
		fmt.Printf("| - (chars: %.2f%%)\n", pctDecrease(inChars, outChars))
		fmt.Println("| file size:")
		fmt.Printf("| - original: %d bytes\n", inBytes)
		fmt.Printf("| - compressed: %d bytes\n", outBytes)
	}

	lookup := ""
	if len(res.Dict) > 0 {
		lookup, _, _ = strings.Cut(res.Artifact, string(llc.Terminator))
	}
	var share float64
	if mode == llc.ModeChars {
		share = float64(utf8.RuneCountInString(lookup)) / float64(outChars) * 100
	} else {
		share = float64(len(lookup)) / float64(outBytes) * 100
	}
	fmt.Printf("| (lookup table %.2f%% of output)\n", share)
}

func reportUncompress(mode llc.Mode, artifact, text string) {
	inBytes, inChars := len(artifact), utf8.RuneCountInString(artifact)
	outBytes, outChars := len(text), utf8.RuneCountInString(text)

	fmt.Println("| percentage uncompression:")
	switch mode {
	case llc.ModeChars:
		fmt.Printf("| - chars: %.2f%%\n", pctIncrease(inChars, outChars))
		fmt.Printf("| - (bytes: %.2f%%)\n", pctIncrease(inBytes, outBytes))
		fmt.Println("| number of chars:")
		fmt.Printf("| - compressed: %d chars\n", inChars)
		fmt.Printf("| - uncompressed: %d chars\n", outChars)
	default:
		fmt.Printf("| - bytes: %.2f%%\n", pctIncrease(inBytes, outBytes))
		fmt.Printf("| - (chars: %.2f%%)\n", pctIncrease(inChars, outChars))
		fmt.Println("| file size:")
		fmt.Printf("| - compressed: %d bytes\n", inBytes)
		fmt.Printf("| - uncompressed: %d bytes\n", outBytes)
	}
}

func pctDecrease(original, new int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-new) / float64(original) * 100
}

func pctIncrease(original, new int) float64 {
	if original == 0 {
		return 0
	}
	return float64(new-original) / float64(original) * 100
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeFile(path, contents string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  llc compress [-mode=bytes|chars] <file>
  llc uncompress [-mode=auto|bytes|chars] <file.llc>`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "llc: "+format+"\n", args...)
	os.Exit(1)
}
