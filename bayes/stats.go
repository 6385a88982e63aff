package bayes

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/vecf64"
)

// Mean is the arithmetic average of data.
func Mean(data []float64) float64 {
	return stat.Mean(data, nil)
}

// Stdev is the population standard deviation of data, computed in a single pass as
// sqrt(E[x²] - E[x]²). Rounding can push the variance slightly below zero; that is
// clamped so the result is never negative or NaN.
func Stdev(data []float64) float64 {
	m := Mean(data)
	variance := floats.Dot(data, data)/float64(len(data)) - m*m
	return math.Sqrt(clampVariance(variance))
}

func clampVariance(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Density is the normal probability density at value.
func Density(value, mean, stdev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdev}.Prob(value)
}

// columnMoments computes, for every feature, the mean and population stdev across rows
// using the same single-pass formula as Stdev.
func columnMoments(rows [][]float64, features int) (means, stdevs []float64) {
	means = make([]float64, features)
	sq := make([]float64, features)
	tmp := make([]float64, features)
	for _, row := range rows {
		vecf64.Add(means, row)
		copy(tmp, row)
		vecf64.Mul(tmp, row)
		vecf64.Add(sq, tmp)
	}
	n := float64(len(rows))
	vecf64.ScaleInv(means, n)
	vecf64.ScaleInv(sq, n)

	// sq becomes the variance, then the stdev
	copy(tmp, means)
	vecf64.Mul(tmp, means)
	vecf64.Sub(sq, tmp)
	for i := range sq {
		sq[i] = clampVariance(sq[i])
	}
	vecf64.Sqrt(sq)
	return means, sq
}
