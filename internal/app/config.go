package app

import (
	"flag"
	"fmt"

	"lifegame/internal/life"
)

// Config represents the command-line parameters for an interactive session.
type Config struct {
	Width       int
	Height      int
	Seed        int64
	Probability float64
	TPS         int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       64,
		Height:      32,
		Probability: life.DefaultProbability,
		TPS:         10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.Float64Var(&c.Probability, "p", c.Probability, "live probability for random resets")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
}

// Validate reports the first unusable parameter.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", life.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: got %v", life.ErrInvalidProbability, c.Probability)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// NewEngine builds the engine described by the configuration.
func (c *Config) NewEngine() (*life.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rng := life.NewTimeRNG()
	if c.Seed != 0 {
		rng = life.NewRNG(c.Seed)
	}
	return life.NewWithRand(c.Width, c.Height, rng)
}
