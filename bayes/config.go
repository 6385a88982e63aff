package bayes

import (
	"github.com/pkg/errors"
)

// Config holds the shape of the problem: how many features a record has and how many
// classes the labels range over.
type Config struct {
	Features int
	Classes  int
}

// DefaultConfig is the Iris problem: four measurements, three species.
func DefaultConfig() Config {
	return Config{Features: 4, Classes: int(MAXCLASS) - 1}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs errList
	if c.Features < 1 {
		errs = append(errs, errors.Errorf("Expected at least 1 feature. Got %d", c.Features))
	}
	if c.Classes < 1 {
		errs = append(errs, errors.Errorf("Expected at least 1 class. Got %d", c.Classes))
	}
	if errs != nil {
		return errs
	}
	return nil
}
