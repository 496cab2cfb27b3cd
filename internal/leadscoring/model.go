package leadscoring

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	trainEpochs       = 500
	trainLearningRate = 0.1
	trainSeed         = 42
	testFraction      = 0.2
)

// Scaler standardizes features to zero mean and unit variance. It is fit on
// the training split only and travels with the artifact.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes per-column mean and standard deviation. Constant
// columns keep a unit deviation so Transform stays defined.
func FitScaler(rows [][]float64) Scaler {
	cols := len(rows[0])
	mean := make([]float64, cols)
	std := make([]float64, cols)

	col := make([]float64, len(rows))
	for j := 0; j < cols; j++ {
		for i, row := range rows {
			col[i] = row[j]
		}
		m, s := stat.MeanStdDev(col, nil)
		if s == 0 || math.IsNaN(s) {
			s = 1
		}
		mean[j] = m
		std[j] = s
	}

	return Scaler{Mean: mean, Std: std}
}

func (s Scaler) Transform(row []float64) []float64 {
	scaled := make([]float64, len(row))
	for j, v := range row {
		scaled[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return scaled
}

// logisticModel is the binary classifier behind the scoring engine: plain
// logistic regression trained by full-batch gradient descent with a fixed
// seed, so training is deterministic for a given dataset.
type logisticModel struct {
	weights   []float64
	intercept float64
}

func trainLogistic(x *mat.Dense, y []float64) logisticModel {
	rows, cols := x.Dims()

	weights := make([]float64, cols)
	intercept := 0.0
	grad := make([]float64, cols)
	row := make([]float64, cols)

	for epoch := 0; epoch < trainEpochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		gradIntercept := 0.0

		for i := 0; i < rows; i++ {
			mat.Row(row, i, x)
			p := sigmoid(floats.Dot(row, weights) + intercept)
			diff := p - y[i]
			floats.AddScaled(grad, diff, row)
			gradIntercept += diff
		}

		step := trainLearningRate / float64(rows)
		floats.AddScaled(weights, -step, grad)
		intercept -= step * gradIntercept
	}

	return logisticModel{weights: weights, intercept: intercept}
}

func predictProba(weights []float64, intercept float64, row []float64) float64 {
	return sigmoid(floats.Dot(row, weights) + intercept)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// splitIndices shuffles deterministically and carves off the test fraction.
// Tiny datasets always keep at least one training row.
func splitIndices(n int) (train, test []int) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	rng := rand.New(rand.NewSource(trainSeed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testSize := int(math.Round(float64(n) * testFraction))
	if testSize >= n {
		testSize = n - 1
	}
	return indices[testSize:], indices[:testSize]
}

// featureImportance normalizes absolute weights over the schema.
func featureImportance(weights []float64) map[string]float64 {
	total := 0.0
	for _, w := range weights {
		total += math.Abs(w)
	}

	importance := make(map[string]float64, len(FeatureSchema))
	for i, name := range FeatureSchema {
		if total == 0 {
			importance[name] = 0
			continue
		}
		importance[name] = math.Abs(weights[i]) / total
	}
	return importance
}
