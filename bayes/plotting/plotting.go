// Package plotting draws the class-conditional densities a fitted classifier scores with.
package plotting

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/irisnb/gaussnb/bayes"
)

// FeatureNames labels the Iris measurements in file order.
var FeatureNames = []string{"sepal length", "sepal width", "petal length", "petal width"}

func featureName(i int) string {
	if i < len(FeatureNames) {
		return FeatureNames[i]
	}
	return fmt.Sprintf("feature %d", i)
}

// Densities plots, for one feature, the normal density of every class as the classifier
// reads it back when scoring.
func Densities(c *bayes.Classifier, feature int) (*plot.Plot, error) {
	if !c.Fitted() {
		return nil, bayes.ErrNotFitted
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("Class densities for %s (%v)", featureName(feature), c.Mode())
	p.X.Label.Text = featureName(feature)
	p.Y.Label.Text = "density"

	// the x range covers ±3 stdev of every class
	lo, hi := math.Inf(1), math.Inf(-1)
	classes := c.Config().Classes
	for i := 0; i < classes; i++ {
		cls := bayes.Class(i + 1)
		mean, stdev, err := c.Lookup(cls, feature)
		if err != nil {
			return nil, err
		}
		lo = math.Min(lo, mean-3*stdev)
		hi = math.Max(hi, mean+3*stdev)

		fn := plotter.NewFunction(func(x float64) float64 { return bayes.Density(x, mean, stdev) })
		fn.Color = plotutil.Color(i)
		fn.Dashes = plotutil.Dashes(i)
		fn.Samples = 200
		p.Add(fn)
		p.Legend.Add(cls.String(), fn)
	}
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min = 0
	return p, nil
}

// SaveDensities writes one PNG per feature into dir and returns the file names.
func SaveDensities(c *bayes.Classifier, dir string) ([]string, error) {
	var files []string
	for i := 0; i < c.Config().Features; i++ {
		p, err := Densities(c, i)
		if err != nil {
			return files, errors.WithMessage(err, featureName(i))
		}
		name := filepath.Join(dir, fmt.Sprintf("feature%d.png", i))
		if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, name); err != nil {
			return files, errors.Wrapf(err, "unable to save %s", name)
		}
		files = append(files, name)
	}
	return files, nil
}
