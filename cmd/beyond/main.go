// Command beyond builds a board for a game variant, applies assignments given
// as arguments and prints the result.
//
// Usage:
//
//	BEYOND_VARIANT=chess beyond e,4=pawn a,-1=rook
//	beyond 1,1=X 0=O
//	beyond 2=X|O|X
//
// Key components are separated by commas; integers are indices, anything else
// is an axis label. A value containing "|" is assigned element-wise along the
// next axis, any other value is broadcast.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/jacentio/beyond/board"
	"github.com/jacentio/beyond/chess"
	"github.com/jacentio/beyond/tictactoe"
)

type config struct {
	Variant  string `env:"BEYOND_VARIANT" envDefault:"tictactoe"`
	Strict   bool   `env:"BEYOND_STRICT" envDefault:"false"`
	LogLevel string `env:"BEYOND_LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "parse log level: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("beyond failed", "error", err)
		os.Exit(1)
	}
}

func variants() *board.Registry {
	r := board.NewRegistry()
	r.Register("tictactoe", tictactoe.Shape)
	r.Register("chess", chess.Shape)
	return r
}

func run(cfg config, args []string, out io.Writer, logger *slog.Logger) error {
	factory, err := variants().Factory(cfg.Variant)
	if err != nil {
		return err
	}

	bc := board.DefaultConfig()
	bc.Strict = cfg.Strict
	bc.DefaultShape = factory
	bc.Logger = logger

	b, err := board.New[string](bc)
	if err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	logger.Info("board ready",
		"board", b.ID(),
		"variant", cfg.Variant,
		"shape", b.Shape().String(),
	)

	for _, arg := range args {
		key, value, err := parseAssignment(arg)
		if err != nil {
			return err
		}
		if err := b.Set(key, value); err != nil {
			return fmt.Errorf("assign %q: %w", arg, err)
		}
	}

	_, err = io.WriteString(out, b.Grid())
	return err
}

// parseAssignment splits "key=value" into a board key and an assignment.
func parseAssignment(arg string) (board.Key, board.Assignment[string], error) {
	rawKey, rawValue, ok := strings.Cut(arg, "=")
	if !ok || rawKey == "" {
		return nil, board.Assignment[string]{}, fmt.Errorf("assignment %q: expected key=value", arg)
	}
	if strings.Contains(rawValue, "|") {
		return parseKey(rawKey), board.Values(strings.Split(rawValue, "|")...), nil
	}
	return parseKey(rawKey), board.Scalar(rawValue), nil
}
