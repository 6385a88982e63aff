package bayes

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how per-class statistics are fitted and read back.
type Mode byte

const (
	// PerRecord keeps one mean/stdev pair per training record of a class, each taken
	// across that record's own features, and scores feature i against entry i+len/5.
	// It is the zero value and the CLI default.
	PerRecord Mode = iota
	// Gaussian keeps one mean/stdev pair per feature across all records of a class.
	Gaussian
)

func (m Mode) String() string {
	switch m {
	case PerRecord:
		return "per-record"
	case Gaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseMode accepts the names printed by Mode.String plus the aliases "literal" and
// "canonical".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "per-record", "perrecord", "literal":
		return PerRecord, nil
	case "gaussian", "canonical":
		return Gaussian, nil
	}
	return 0, errors.Errorf("Expected only \"per-record\" or \"gaussian\". Got %q", s)
}

// ClassStatistics is the fitted summary of one class.
type ClassStatistics struct {
	Means  []float64
	Stdevs []float64
	Prior  float64
}

// Classifier is a Gaussian naive Bayes classifier. It is fitted exactly once.
type Classifier struct {
	cfg     Config
	mode    Mode
	classes []ClassStatistics
}

// New creates an empty classifier.
func New(cfg Config, mode Mode) *Classifier {
	return &Classifier{cfg: cfg, mode: mode}
}

func (c *Classifier) Config() Config { return c.cfg }
func (c *Classifier) Mode() Mode     { return c.mode }

// Fitted reports whether Fit has succeeded.
func (c *Classifier) Fitted() bool { return c.classes != nil }

// Statistics returns the fitted statistics of class cls.
func (c *Classifier) Statistics(cls Class) (ClassStatistics, bool) {
	i := cls.index()
	if i < 0 || i >= len(c.classes) {
		return ClassStatistics{}, false
	}
	return c.classes[i], true
}

// Fit computes the statistics of every class from the training records.
func (c *Classifier) Fit(records []Record) error {
	if c.Fitted() {
		return ErrRefit
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrEmptyTraining
	}

	partitions := make([][][]float64, c.cfg.Classes)
	for _, rec := range records {
		i := rec.Class.index()
		if i < 0 || i >= c.cfg.Classes {
			return errors.Errorf("record labeled %d is outside [1, %d]", int(rec.Class), c.cfg.Classes)
		}
		if len(rec.Features) != c.cfg.Features {
			return errors.Errorf("Expected %d features. Got %d", c.cfg.Features, len(rec.Features))
		}
		partitions[i] = append(partitions[i], rec.Features)
	}

	classes := make([]ClassStatistics, c.cfg.Classes)
	for i, rows := range partitions {
		classes[i] = c.calcClassStatistics(rows)
		classes[i].Prior = float64(len(rows)) / float64(len(records))
	}
	c.classes = classes
	return nil
}

func (c *Classifier) calcClassStatistics(rows [][]float64) (cs ClassStatistics) {
	switch c.mode {
	case Gaussian:
		// a class with no training rows keeps empty lists; scoring it is a domain error
		if len(rows) > 0 {
			cs.Means, cs.Stdevs = columnMoments(rows, c.cfg.Features)
		}
	default:
		cs.Means = make([]float64, 0, len(rows))
		cs.Stdevs = make([]float64, 0, len(rows))
		for _, row := range rows {
			cs.Means = append(cs.Means, Mean(row))
			cs.Stdevs = append(cs.Stdevs, Stdev(row))
		}
	}
	return cs
}

// offset is where feature 0 is read from in a class's statistics.
func (c *Classifier) offset(cs ClassStatistics) int {
	if c.mode == PerRecord {
		return len(cs.Means) / 5
	}
	return 0
}

// Lookup returns the mean and stdev the classifier scores feature i of class cls against.
func (c *Classifier) Lookup(cls Class, i int) (mean, stdev float64, err error) {
	cs, ok := c.Statistics(cls)
	if !ok {
		return 0, 0, &DomainError{Class: cls, Msg: "no statistics for class"}
	}
	return c.lookup(cls, cs, i)
}

func (c *Classifier) lookup(cls Class, cs ClassStatistics, i int) (mean, stdev float64, err error) {
	idx := i + c.offset(cs)
	if idx < 0 || idx >= len(cs.Means) || idx >= len(cs.Stdevs) {
		return 0, 0, &DomainError{Class: cls, Index: idx, Len: len(cs.Means)}
	}
	return cs.Means[idx], cs.Stdevs[idx], nil
}

// ClassProbability is the product of the per-feature densities of features under class
// cls, times the class prior.
func (c *Classifier) ClassProbability(features []float64, cls Class) (float64, error) {
	cs, ok := c.Statistics(cls)
	if !ok {
		return 0, &DomainError{Class: cls, Msg: "no statistics for class"}
	}

	p := 1.0
	for i, v := range features {
		mean, stdev, err := c.lookup(cls, cs, i)
		if err != nil {
			return 0, err
		}
		p *= Density(v, mean, stdev)
	}
	return p * cs.Prior, nil
}

// Scores returns the class probability of features for every class, indexed by class-1.
func (c *Classifier) Scores(features []float64) (scores []float64, err error) {
	if !c.Fitted() {
		return nil, ErrNotFitted
	}
	if len(features) != c.cfg.Features {
		return nil, &DomainError{Msg: "Expected " + strconv.Itoa(c.cfg.Features) + " features. Got " + strconv.Itoa(len(features))}
	}

	scores = make([]float64, len(c.classes))
	for i := range c.classes {
		if scores[i], err = c.ClassProbability(features, Class(i+1)); err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// Predict returns the class with the highest probability. Ties go to the lowest class.
func (c *Classifier) Predict(features []float64) (Class, error) {
	scores, err := c.Scores(features)
	if err != nil {
		return 0, err
	}
	for i, s := range scores {
		if math.IsNaN(s) {
			return 0, &DomainError{Class: Class(i + 1), Msg: "score is NaN"}
		}
	}
	return argmax(scores), nil
}

func argmax(a []float64) Class {
	max := math.Inf(-1)
	var maxClass int
	for i, score := range a {
		if score > max {
			maxClass = i
			max = score
		}
	}
	return Class(maxClass + 1)
}
