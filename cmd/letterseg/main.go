package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/npillmayer/letterseg"
	"github.com/npillmayer/letterseg/scan"
	"github.com/npillmayer/letterseg/wordlist"
	"golang.org/x/term"
)

const helpBanner = `
letterseg: candidate tokens for Latin letters and Arabic digits

Usage: letterseg [flags]

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

var (
	source        = flag.String("in", pipeName, "Source text file")
	dictionary    = flag.String("dict", "", "Word list, one word per line")
	englishPrefix = flag.Bool("english-prefix", true, "Prefix variants of long unknown letter runs")
	englishSuffix = flag.Bool("english-suffix", true, "Suffix variants of long letter runs")
	arabicPrefix  = flag.Bool("arabic-prefix", true, "Prefix variants of long digit runs")
	arabicSuffix  = flag.Bool("arabic-suffix", true, "Suffix variants of long digit runs")
	bufferSize    = flag.Int("buffer", scan.DefaultConfig().BufferSize, "Size of the scan window in runes")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		log.Fatalf("letterseg: %v", err)
	}
}

func run(out io.Writer) error {
	var words letterseg.Dictionary
	if *dictionary != "" {
		f, err := os.Open(*dictionary)
		if err != nil {
			return fmt.Errorf("unable to open the word list: %w", err)
		}
		defer f.Close()
		ws, err := wordlist.LoadDictionary(*dictionary, f)
		if err != nil {
			return err
		}
		words = ws
	}

	src, err := openSource(*source)
	if err != nil {
		return err
	}
	defer src.Close()

	config := scan.DefaultConfig()
	config.BufferSize = *bufferSize
	config.Threshold = min(config.Threshold, config.BufferSize)
	config.Flags = letterseg.Config{
		EnglishPrefix: *englishPrefix,
		EnglishSuffix: *englishSuffix,
		ArabicPrefix:  *arabicPrefix,
		ArabicSuffix:  *arabicSuffix,
	}
	scanner, err := scan.NewScanner(bufio.NewReader(src), config, letterseg.New(words))
	if err != nil {
		return err
	}
	lexemes, err := scanner.Scan()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, lx := range lexemes {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", lx.Start, lx.Length, lx.Kind, lx.Text)
	}
	return w.Flush()
}

// openSource opens a text file, or stdin if path is the pipe name.
func openSource(path string) (io.ReadCloser, error) {
	if path == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}
