package bayes

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Class is an Iris species. Labels in the data files are 1-based.
type Class int

const (
	Setosa Class = iota + 1
	Versicolor
	Virginica
	MAXCLASS
)

func (c Class) String() string {
	switch c {
	case Setosa:
		return "setosa"
	case Versicolor:
		return "versicolor"
	case Virginica:
		return "virginica"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// index is the 0-based slot of the class in a classifier.
func (c Class) index() int { return int(c) - 1 }

// UnmarshalYAML lets fixtures name a class either by its label or by its species name.
func (c *Class) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n int
	if err := unmarshal(&n); err == nil {
		*c = Class(n)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	cls, err := ParseClassName(s)
	if err != nil {
		return err
	}
	*c = cls
	return nil
}

// ParseClassName maps a species name back to its Class.
func ParseClassName(name string) (Class, error) {
	for c := Setosa; c < MAXCLASS; c++ {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, errors.Errorf("unknown class name %q", name)
}
