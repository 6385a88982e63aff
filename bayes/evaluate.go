package bayes

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Prediction pairs a record with the class the classifier chose for it.
type Prediction struct {
	Record    Record
	Predicted Class
}

// Correct reports whether the prediction matches the record's label.
func (p Prediction) Correct() bool { return p.Predicted == p.Record.Class }

// Tally counts right and wrong predictions.
type Tally struct {
	Right, Wrong int
}

func (t *Tally) Add(p Prediction) {
	if p.Correct() {
		t.Right++
	} else {
		t.Wrong++
	}
}

// Accuracy is right / (right + wrong), or 0 when nothing was counted.
func (t Tally) Accuracy() float64 {
	total := t.Right + t.Wrong
	if total == 0 {
		return 0
	}
	return float64(t.Right) / float64(total)
}

// Evaluate predicts every record in order. fn, if not nil, sees each prediction as it is
// made. The first failed prediction stops the run.
func Evaluate(c *Classifier, records []Record, fn func(Prediction)) (tally Tally, err error) {
	for i, rec := range records {
		var p Prediction
		p.Record = rec
		if p.Predicted, err = c.Predict(rec.Features); err != nil {
			return tally, errors.Wrapf(err, "record %d", i+1)
		}
		tally.Add(p)
		if fn != nil {
			fn(p)
		}
	}
	return tally, nil
}

// Confusion counts predictions by true class (rows) and predicted class (columns).
type Confusion [][]int

func NewConfusion(classes int) Confusion {
	m := make(Confusion, classes)
	for i := range m {
		m[i] = make([]int, classes)
	}
	return m
}

func (m Confusion) Add(p Prediction) {
	t, q := p.Record.Class.index(), p.Predicted.index()
	if t < 0 || t >= len(m) || q < 0 || q >= len(m) {
		return
	}
	m[t][q]++
}

func (m Confusion) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-12s", "true\\pred")
	for j := range m {
		fmt.Fprintf(&buf, "%12v", Class(j+1))
	}
	buf.WriteByte('\n')
	for i, row := range m {
		fmt.Fprintf(&buf, "%-12v", Class(i+1))
		for _, n := range row {
			fmt.Fprintf(&buf, "%12d", n)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
