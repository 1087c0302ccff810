package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/npillmayer/cutter"
	"github.com/npillmayer/cutter/lcexceptions"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// errWordsFailed signals that at least one word has not been classified.
// The reasons have already been printed along with the results.
var errWordsFailed = errors.New("some words could not be classified")

type options struct {
	exceptions string
	fold       bool
	seed       uint64
	format     string
	trace      string
}

// result is one line of output.
type result struct {
	Word   string `yaml:"word"`
	Cutter string `yaml:"cutter,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func tracer() tracing.Trace {
	return tracing.Select("cutter")
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName + " [word ...]",
		Short: "Print Library of Congress Cutter numbers",
		Long: `lccutter prints the Library of Congress Cutter number for every word,
following the LC Cutter Table (as of ` + cutter.TableVersion + `).

Words are taken from the command line or, if there are none, from
standard input, one word per line. Words must consist of letters only.`,
		Version:       Version + " (LC Cutter Table " + cutter.TableVersion + ")",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.exceptions, "exceptions", "e", "", "File with words of fixed Cutter numbers")
	cmd.Flags().BoolVar(&opts.fold, "fold", false, "Strip diacritics before classification")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for random correction digits (0 = random)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format (text, yaml)")
	cmd.Flags().StringVar(&opts.trace, "trace", "error", "Trace level (debug, info, error)")

	// No sub-commands: every argument is a word, "version" and "help" included.
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	level, err := traceLevel(opts.trace)
	if err != nil {
		return err
	}
	tracer().SetTraceLevel(level)
	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	classifier, err := newClassifier(opts)
	if err != nil {
		return err
	}
	words := args
	if len(words) == 0 {
		if words, err = readWords(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	results := make([]result, 0, len(words))
	failed := false
	for _, word := range words {
		r := classify(classifier, word)
		if r.Error != "" {
			failed = true
		}
		results = append(results, r)
	}
	if err = write(cmd.OutOrStdout(), opts.format, results); err != nil {
		return err
	}
	if failed {
		return errWordsFailed
	}
	return nil
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}

func newClassifier(opts options) (*cutter.Classifier, error) {
	var copts []cutter.Option
	if opts.fold {
		copts = append(copts, cutter.WithFolding())
	}
	if opts.seed != 0 {
		copts = append(copts, cutter.WithSource(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	}
	if opts.exceptions != "" {
		f, err := os.Open(opts.exceptions)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		ex := cutter.NewExceptions()
		if err = lcexceptions.LoadExceptions(ex, f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.exceptions, err)
		}
		copts = append(copts, cutter.WithExceptions(ex))
	}
	return cutter.New(copts...), nil
}

// classify rejects words with non-letters before asking the classifier.
func classify(classifier *cutter.Classifier, word string) result {
	if !cutter.IsLetters(word) {
		return result{Word: word, Error: cutter.InvalidCharacterMessage}
	}
	code, err := classifier.Classify(word)
	if err != nil {
		tracer().Debugf("cannot classify %q: %v", word, err)
		return result{Word: word, Error: cutter.Message(err)}
	}
	return result{Word: word, Cutter: code}
}

func readWords(in io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

func write(out io.Writer, format string, results []result) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range results {
		text := r.Cutter
		if r.Error != "" {
			text = r.Error
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", r.Word, text); err != nil {
			return err
		}
	}
	return nil
}
