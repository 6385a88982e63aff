package bayes

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Example is a feature vector with the class a correct classifier should give it. These
// are printed for a manual sanity check after the accuracy report.
type Example struct {
	Expect   Class     `yaml:"expect"`
	Features []float64 `yaml:"features"`
}

// DefaultExamples is one hand-picked flower of each species.
func DefaultExamples() []Example {
	return []Example{
		{Expect: Setosa, Features: []float64{5.1, 3.5, 1.4, 0.2}},
		{Expect: Versicolor, Features: []float64{5.5, 2.4, 3.8, 1.1}},
		{Expect: Virginica, Features: []float64{6.7, 3.1, 5.6, 2.4}},
	}
}

// LoadExamples reads a YAML list of examples.
func LoadExamples(path string, cfg Config) ([]Example, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var examples []Example
	if err := yaml.UnmarshalStrict(bs, &examples); err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}
	for i, ex := range examples {
		if len(ex.Features) != cfg.Features {
			return nil, errors.Errorf("%s: example %d: Expected %d features. Got %d", path, i+1, cfg.Features, len(ex.Features))
		}
		if ex.Expect < 1 || int(ex.Expect) > cfg.Classes {
			return nil, errors.Errorf("%s: example %d: class %d outside [1, %d]", path, i+1, int(ex.Expect), cfg.Classes)
		}
	}
	return examples, nil
}
