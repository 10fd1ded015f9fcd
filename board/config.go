package board

import (
	"log/slog"

	"github.com/google/uuid"
)

// DefaultSize is the side length of the default square shape.
const DefaultSize = 3

// Config holds configuration for a Store or Board.
type Config struct {
	// ID identifies the board in log output.
	// Default: a random UUID
	ID string

	// Strict requires every key to be a full key.
	// Partial keys fail with ErrPartialAccessDisallowed instead of
	// producing a view or broadcasting.
	// Default: false
	Strict bool

	// MissingAsZero makes reads of unset cells return the zero value
	// instead of ErrCellNotFound.
	// Default: false
	MissingAsZero bool

	// DefaultShape builds the shape used when a board is created without dimensions.
	// Default: a DefaultSize x DefaultSize rows/columns shape
	DefaultShape ShapeFactory

	// Logger receives debug output for broadcasts and rejected keys.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns a non-strict configuration with a 3x3 default shape.
func DefaultConfig() Config {
	return Config{
		DefaultShape: defaultShape,
		Logger:       slog.Default(),
	}
}

// validate fills in defaults for unset fields.
func (c *Config) validate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.DefaultShape == nil {
		c.DefaultShape = defaultShape
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func defaultShape() (Shape, error) {
	return SquareShape(DefaultSize)
}
