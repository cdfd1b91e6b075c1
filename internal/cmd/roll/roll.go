// Package roll parses roll command flags and prints batch roll results.
package roll

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/dieroll/internal/core/dice"
	entrypoint "github.com/louisbranch/dieroll/internal/platform/cmd"
	apperrors "github.com/louisbranch/dieroll/internal/platform/errors"
	"github.com/louisbranch/dieroll/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds roll command configuration.
type Config struct {
	Amount    int    `env:"DIEROLL_AMOUNT"     envDefault:"1"`
	Faces     int    `env:"DIEROLL_FACES"      envDefault:"20"`
	MaxAmount int    `env:"DIEROLL_MAX_AMOUNT" envDefault:"1000"`
	JSON      bool   `env:"DIEROLL_JSON"`
	Locale    string `env:"DIEROLL_LOCALE"     envDefault:"en-US"`
}

// Output is the JSON form of a batch roll.
type Output struct {
	Faces   int   `json:"faces"`
	Results []int `json:"results"`
	Total   int   `json:"total"`
}

// ParseConfig parses environ (KEY=VALUE pairs) and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, environ []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromEnviron(&cfg, environ, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Amount, "amount", cfg.Amount, "number of dice to roll")
	fs.IntVar(&cfg.Faces, "faces", cfg.Faces, "number of faces on each die")
	fs.IntVar(&cfg.MaxAmount, "max-amount", cfg.MaxAmount, "largest amount accepted in one roll (0 = unlimited)")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print results as JSON")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
}

// Run rolls the configured dice with src and writes the results to out.
func Run(ctx context.Context, cfg Config, src dice.Source, out io.Writer) error {
	_, span := otel.Tracer().Start(ctx, "roll.Run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("dice.amount", cfg.Amount),
		attribute.Int("dice.faces", cfg.Faces),
	)

	if cfg.MaxAmount > 0 && cfg.Amount > cfg.MaxAmount {
		err := apperrors.AmountTooLarge(cfg.Amount, cfg.MaxAmount)
		span.RecordError(err)
		return err
	}

	results, err := dice.RollWith(src, cfg.Amount, cfg.Faces)
	if err != nil {
		err = apperrors.FromDice(err, cfg.Amount, cfg.Faces)
		span.RecordError(err)
		return err
	}
	total := dice.Total(results)
	span.SetAttributes(attribute.Int("dice.total", total))

	if cfg.JSON {
		return writeJSON(out, Output{Faces: cfg.Faces, Results: results, Total: total})
	}
	// Faces was validated by RollWith.
	die, _ := dice.New(cfg.Faces)
	return writeText(out, die, results, total)
}

// UserMessage renders err for display, localizing domain errors.
func UserMessage(err error, locale string) string {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.LocalizedMessage(locale)
	}
	return err.Error()
}

func writeJSON(out io.Writer, output Output) error {
	encoder := json.NewEncoder(out)
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode roll output: %w", err)
	}
	return nil
}

func writeText(out io.Writer, die dice.Die, results []int, total int) error {
	values := make([]string, len(results))
	for i, value := range results {
		values[i] = strconv.Itoa(value)
	}
	line := fmt.Sprintf("%d%s: %s (total %d)", len(results), die, strings.Join(values, " "), total)
	if len(results) == 0 {
		line = fmt.Sprintf("0%s: no dice rolled", die)
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("write roll output: %w", err)
	}
	return nil
}
