// Command huffstat prints the Huffman code and compression statistics of a
// text document.
//
//	huffstat -file To_Build_A_Fire.docx
//	huffstat -url https://example.com/story.txt -subset "abcz ."
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/notify"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/report"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/repo"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/service"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/huffman"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/logger"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/textsource"
)

func main() {
	var (
		file         = flag.String("file", "", "text or .docx file to analyze")
		url          = flag.String("url", "", "URL of a text or .docx document to analyze")
		subset       = flag.String("subset", string(report.DefaultSubset), "symbols for the subset table")
		keepCase     = flag.Bool("keep-case", false, "do not lowercase the text")
		keepNewlines = flag.Bool("keep-newlines", false, "do not strip newlines")
		quiet        = flag.Bool("q", false, "do not log progress")
	)
	flag.Parse()

	logg := logger.NewWriter(os.Stderr, "huffstat ")
	if *quiet {
		logg = logger.Nop()
	}
	if err := run(*file, *url, *subset, textsource.Policy{KeepCase: *keepCase, KeepNewlines: *keepNewlines}, logg); err != nil {
		fmt.Fprintf(os.Stderr, "huffstat: %v\n", err)
		os.Exit(1)
	}
}

func run(file, url, subset string, policy textsource.Policy, logg logger.Logger) error {
	ctx := context.Background()

	var (
		text, source string
		err          error
	)
	switch {
	case file != "" && url != "":
		return errors.New("use only one of -file and -url")
	case file != "":
		text, err = textsource.ReadFile(file)
		source = file
	case url != "":
		text, err = textsource.NewClient().Fetch(ctx, url)
		source = url
	default:
		return errors.New("one of -file or -url is required")
	}
	if err != nil {
		return err
	}

	svc, err := service.NewAnalysisService(repo.NewAnalysisRepoInMemory(), notify.Nop(), logg, 1)
	if err != nil {
		return err
	}
	a, _, err := svc.Analyze(ctx, service.AnalyzeRequest{Text: text, Source: source, Policy: policy})
	if errors.Is(err, huffman.ErrEmptyAlphabet) {
		return fmt.Errorf("%s contains no characters to analyze", source)
	}
	if err != nil {
		return err
	}

	w := report.New(os.Stdout)
	if err := w.All(a); err != nil {
		return err
	}
	if subset != "" {
		rows, skipped, err := service.SubsetRows(a, []rune(subset), true)
		if err != nil {
			return err
		}
		w.Subset(rows, skipped)
	}
	return w.Err()
}
