// Package config reads the YAML settings file of the slm command.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	naturallang "github.com/joguns12/Natural-Lang"
	"github.com/joguns12/Natural-Lang/language"
)

// Config mirrors the command line flags. Flags given explicitly take
// precedence over values loaded from a file.
//
//	stopwords: standard
//	stem: true
//	smooth: false
//	trigram: true
//	trigram_pool: context
//	seed: 7
//	length: 12
type Config struct {
	StopWords   string `yaml:"stopwords"`
	Stem        bool   `yaml:"stem"`
	Smooth      bool   `yaml:"smooth"`
	Trigram     bool   `yaml:"trigram"`
	TrigramPool string `yaml:"trigram_pool"`
	Seed        int64  `yaml:"seed"`
	Length      int    `yaml:"length"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		StopWords:   "none",
		TrigramPool: language.FullTablePool.String(),
		Length:      language.DefaultLength,
	}
}

// Load decodes YAML from r over Default. Unknown keys are rejected and an
// empty document leaves the defaults in place.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if _, err := language.ParsePool(cfg.TrigramPool); err != nil {
		return Config{}, err
	}
	if cfg.Length < 0 {
		return Config{}, errors.Errorf("length must not be negative: %d", cfg.Length)
	}
	return cfg, nil
}

// LoadFile reads a config file from path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	cfg, err := Load(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// Options converts the settings to corpus reader options.
func (c Config) Options() ([]naturallang.Option, error) {
	pool, err := language.ParsePool(c.TrigramPool)
	if err != nil {
		return nil, err
	}
	return []naturallang.Option{
		naturallang.WithStopWords(c.StopWords),
		naturallang.WithStemming(c.Stem),
		naturallang.WithSmoothing(c.Smooth),
		naturallang.WithTrigram(c.Trigram),
		naturallang.WithTrigramPool(pool),
	}, nil
}
