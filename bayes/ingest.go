package bayes

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one labeled sample.
type Record struct {
	Features []float64
	Class    Class
}

// Load reads every record in the file at path. Lines are "f1 ... fN label", separated by
// any whitespace. The first malformed line aborts the load.
func Load(path string, cfg Config) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	return Parse(f, path, cfg)
}

// LoadDataset loads the training and test files.
func LoadDataset(trainPath, testPath string, cfg Config) (train, test []Record, err error) {
	if train, err = Load(trainPath, cfg); err != nil {
		return nil, nil, errors.WithMessage(err, "training data")
	}
	if test, err = Load(testPath, cfg); err != nil {
		return nil, nil, errors.WithMessage(err, "test data")
	}
	return train, test, nil
}

// Parse reads records from r. name is only used in error messages.
func Parse(r io.Reader, name string, cfg Config) (records []Record, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	s := bufio.NewScanner(r)
	var line int
	for s.Scan() {
		line++
		rec, err := parseLine(s.Text(), cfg)
		if err != nil {
			err.Path, err.Line = name, line
			return nil, err
		}
		records = append(records, rec)
	}
	if err = s.Err(); err != nil {
		return nil, &IOError{Path: name, Err: err}
	}
	return records, nil
}

func parseLine(row string, cfg Config) (Record, *ParseError) {
	fields := strings.Fields(row)
	if len(fields) != cfg.Features+1 {
		return Record{}, &ParseError{Msg: "expected " + strconv.Itoa(cfg.Features+1) + " fields, got " + strconv.Itoa(len(fields))}
	}

	features := make([]float64, cfg.Features)
	for i := range features {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Record{}, &ParseError{Token: fields[i], Msg: "invalid number"}
		}
		features[i] = f
	}

	label := fields[cfg.Features]
	n, err := strconv.Atoi(label)
	if err != nil {
		return Record{}, &ParseError{Token: label, Msg: "invalid class label"}
	}
	if n < 1 || n > cfg.Classes {
		return Record{}, &ParseError{Token: label, Msg: "class label out of range [1, " + strconv.Itoa(cfg.Classes) + "]"}
	}
	return Record{Features: features, Class: Class(n)}, nil
}
