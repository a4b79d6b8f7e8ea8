package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	naturallang "github.com/joguns12/Natural-Lang"
	"github.com/joguns12/Natural-Lang/corpus"
	"github.com/joguns12/Natural-Lang/internal/config"
	"github.com/joguns12/Natural-Lang/internal/logging"
	"github.com/joguns12/Natural-Lang/language"
)

type rankCmd struct {
	Order string `arg:"positional" help:"unigram, bigram or trigram (default: every enabled order)"`
	Top   int    `arg:"-k,--top" help:"keep n-grams at least as probable as the k-th best (0 keeps all)"`
}

type generateCmd struct {
	Order  string   `arg:"positional,required" help:"unigram, bigram or trigram"`
	Head   []string `arg:"positional" help:"tokens the sentence starts with"`
	Code   int      `arg:"-c,--code" help:"0 greedy, 1 weighted over the table, 2 weighted over the top 10"`
	Length int      `arg:"-n,--length" help:"trigram tokens to append (default from config)"`
	Count  int      `arg:"--count" default:"1" help:"sentences to generate"`
}

type statsCmd struct{}

type args struct {
	Rank     *rankCmd     `arg:"subcommand:rank" help:"list the most probable n-grams"`
	Generate *generateCmd `arg:"subcommand:generate" help:"generate sentences"`
	Stats    *statsCmd    `arg:"subcommand:stats" help:"describe the corpus and the model"`

	Input     string  `arg:"-i,--input" default:"-" help:"corpus file, - for stdin"`
	Lines     bool    `arg:"--lines" help:"input is one tokenized sentence per line"`
	Config    string  `arg:"--config" help:"YAML settings file"`
	StopWords *string `arg:"--stopwords" help:"none, standard or a word list file"`
	Stem      *bool   `arg:"--stem" help:"reduce tokens to Porter stems"`
	Smooth    *bool   `arg:"--smooth" help:"add-one smoothing"`
	Trigram   *bool   `arg:"--trigram" help:"build the trigram table"`
	Pool      *string `arg:"--pool" help:"trigram candidate pool: full or context"`
	Seed      *int64  `arg:"--seed" help:"random seed (0 picks one from the clock)"`
	Verbose   bool    `arg:"-v,--verbose" help:"debug logging"`
}

func (args) Description() string {
	return "slm trains an n-gram language model on a corpus and queries it."
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "slm"}, &a)
	if err != nil {
		return err
	}
	switch err := p.Parse(argv); {
	case err == arg.ErrHelp:
		p.WriteHelp(stdout)
		return nil
	case err != nil:
		p.WriteUsage(stderr)
		return err
	}
	if p.Subcommand() == nil {
		p.WriteUsage(stderr)
		return errors.New("missing command: rank, generate or stats")
	}

	logger := logging.New(stderr, a.Verbose)
	defer logger.Sync()

	cfg, err := settings(a)
	if err != nil {
		return err
	}

	sentences, err := readCorpus(a.Input, a.Lines, stdin)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", zap.String("input", a.Input), zap.Int("sentences", len(sentences)))

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	reader, err := naturallang.NewCorpusReader(sentences, opts...)
	if err != nil {
		return err
	}
	model := reader.Model()
	logger.Info("model trained",
		zap.Int("tokens", model.N()),
		zap.Int("vocabulary", model.V()),
		zap.Int("bigrams", model.Len(language.Bigram)),
		zap.Int("trigrams", model.Len(language.Trigram)),
		zap.Bool("smoothing", cfg.Smooth),
	)

	switch {
	case a.Rank != nil:
		return rank(stdout, model, a.Rank)
	case a.Generate != nil:
		return generate(stdout, logger, reader, cfg, a.Generate)
	default:
		return stats(stdout, sentences, model)
	}
}

// settings loads the config file, if any, and applies explicit flags on top.
func settings(a args) (config.Config, error) {
	cfg := config.Default()
	if a.Config != "" {
		var err error
		if cfg, err = config.LoadFile(a.Config); err != nil {
			return cfg, err
		}
	}
	if a.StopWords != nil {
		cfg.StopWords = *a.StopWords
	}
	if a.Stem != nil {
		cfg.Stem = *a.Stem
	}
	if a.Smooth != nil {
		cfg.Smooth = *a.Smooth
	}
	if a.Trigram != nil {
		cfg.Trigram = *a.Trigram
	}
	if a.Pool != nil {
		cfg.TrigramPool = *a.Pool
	}
	if a.Seed != nil {
		cfg.Seed = *a.Seed
	}
	if a.Generate != nil && a.Generate.Length > 0 {
		cfg.Length = a.Generate.Length
	}
	return cfg, nil
}

func readCorpus(input string, lines bool, stdin io.Reader) ([][]string, error) {
	if input != "-" {
		return corpus.ReadFile(input, lines)
	}
	if lines {
		return corpus.ReadLines(stdin)
	}
	return corpus.ReadText(stdin)
}

func rank(w io.Writer, model *language.NGramModel, cmd *rankCmd) error {
	orders := []language.Order{language.Unigram, language.Bigram}
	if model.Config().Trigram {
		orders = append(orders, language.Trigram)
	}
	if cmd.Order != "" {
		o, err := language.ParseOrder(cmd.Order)
		if err != nil {
			return err
		}
		if o == language.Trigram && !model.Config().Trigram {
			return errors.New("trigrams are disabled, pass --trigram")
		}
		orders = []language.Order{o}
	}

	listings := make(map[language.Order][]language.Entry, len(orders))
	for _, o := range orders {
		listings[o] = model.Rank(o, cmd.Top)
	}
	return language.WriteListing(w, listings)
}

func generate(w io.Writer, logger *zap.Logger, reader *naturallang.CorpusReader, cfg config.Config, cmd *generateCmd) error {
	model := reader.Model()
	o, err := language.ParseOrder(cmd.Order)
	if err != nil {
		return err
	}
	code := language.Selection(cmd.Code)
	if !code.Valid() {
		return errors.Errorf("unknown selection code %d", cmd.Code)
	}
	// the head goes through the same pipeline as the corpus
	head := reader.Preprocess(cmd.Head)
	if o == language.Trigram {
		if !model.Config().Trigram {
			return errors.New("trigrams are disabled, pass --trigram")
		}
		if len(head) < 2 {
			return errors.Errorf("trigram generation needs at least two head tokens after preprocessing, got %q", head)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating",
		zap.Int64("seed", seed),
		zap.Stringer("order", o),
		zap.Int("code", cmd.Code),
		zap.Strings("head", head),
	)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < cmd.Count; i++ {
		if _, err := fmt.Fprintln(w, model.Generate(rng, o, code, head, cfg.Length)); err != nil {
			return err
		}
	}
	return nil
}

func stats(w io.Writer, sentences [][]string, model *language.NGramModel) error {
	s, err := corpus.Describe(sentences)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "sentences\t%d\n", s.Sentences)
	fmt.Fprintf(bw, "tokens\t%d\n", s.Tokens)
	fmt.Fprintf(bw, "vocabulary\t%d\n", s.Vocabulary)
	fmt.Fprintf(bw, "length mean\t%.2f\n", s.MeanLength)
	fmt.Fprintf(bw, "length median\t%.2f\n", s.MedianLength)
	fmt.Fprintf(bw, "length p90\t%.2f\n", s.P90Length)
	fmt.Fprintf(bw, "length max\t%.0f\n", s.MaxLength)
	fmt.Fprintf(bw, "model tokens\t%d\n", model.N())
	fmt.Fprintf(bw, "model vocabulary\t%d\n", model.V())
	for o := language.Unigram; o <= language.Trigram; o++ {
		fmt.Fprintf(bw, "%ss\t%d\n", o, model.Len(o))
	}
	return bw.Flush()
}
