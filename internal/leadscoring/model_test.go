package leadscoring

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFitScaler(t *testing.T) {
	t.Parallel()

	scaler := FitScaler([][]float64{{1, 5}, {3, 5}})

	if math.Abs(scaler.Mean[0]-2) > 1e-9 {
		t.Fatalf("mean[0]=%v, want 2", scaler.Mean[0])
	}
	if math.Abs(scaler.Std[0]-math.Sqrt2) > 1e-9 {
		t.Fatalf("std[0]=%v, want sqrt(2)", scaler.Std[0])
	}
	// Constant column keeps unit deviation so Transform stays defined.
	if scaler.Std[1] != 1 {
		t.Fatalf("constant column std=%v, want 1", scaler.Std[1])
	}

	scaled := scaler.Transform([]float64{3, 5})
	if math.Abs(scaled[0]-1/math.Sqrt2) > 1e-9 || scaled[1] != 0 {
		t.Fatalf("Transform=%v", scaled)
	}
}

func TestSplitIndicesDeterministic(t *testing.T) {
	t.Parallel()

	train1, test1 := splitIndices(10)
	train2, test2 := splitIndices(10)

	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Fatal("split is not deterministic")
	}
	if len(test1) != 2 || len(train1) != 8 {
		t.Fatalf("split sizes train=%d test=%d", len(train1), len(test1))
	}

	seen := make(map[int]bool, 10)
	for _, i := range append(append([]int{}, train1...), test1...) {
		seen[i] = true
	}
	if len(seen) != 10 {
		t.Fatalf("split lost indices: %v / %v", train1, test1)
	}
}

func TestSplitIndicesKeepsTrainingRow(t *testing.T) {
	t.Parallel()

	train, test := splitIndices(1)
	if len(train) != 1 || len(test) != 0 {
		t.Fatalf("n=1 split train=%d test=%d", len(train), len(test))
	}
}

func TestTrainLogisticSeparatesClasses(t *testing.T) {
	t.Parallel()

	// One feature, already standardized: positives at +1, negatives at -1.
	rows := 20
	data := make([]float64, rows)
	labels := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if i%2 == 0 {
			data[i] = 1
			labels[i] = 1
		} else {
			data[i] = -1
		}
	}

	model := trainLogistic(mat.NewDense(rows, 1, data), labels)

	if p := predictProba(model.weights, model.intercept, []float64{1}); p <= 0.5 {
		t.Fatalf("positive-side probability %v, want > 0.5", p)
	}
	if p := predictProba(model.weights, model.intercept, []float64{-1}); p >= 0.5 {
		t.Fatalf("negative-side probability %v, want < 0.5", p)
	}
}

func TestFeatureImportanceNormalized(t *testing.T) {
	t.Parallel()

	weights := make([]float64, len(FeatureSchema))
	weights[0] = 2
	weights[1] = -2

	importance := featureImportance(weights)
	if len(importance) != len(FeatureSchema) {
		t.Fatalf("importance has %d entries, want %d", len(importance), len(FeatureSchema))
	}

	sum := 0.0
	for _, v := range importance {
		if v < 0 {
			t.Fatalf("negative importance: %v", importance)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("importance sums to %v, want 1", sum)
	}
	if importance[FeatureSchema[0]] != 0.5 || importance[FeatureSchema[1]] != 0.5 {
		t.Fatalf("importance=%v", importance)
	}
}

func TestFeatureImportanceZeroWeights(t *testing.T) {
	t.Parallel()

	importance := featureImportance(make([]float64, len(FeatureSchema)))
	for name, v := range importance {
		if v != 0 {
			t.Fatalf("%s importance=%v, want 0", name, v)
		}
	}
}

func TestSigmoidBounds(t *testing.T) {
	t.Parallel()

	for _, z := range []float64{-1000, -1, 0, 1, 1000} {
		p := sigmoid(z)
		if p < 0 || p > 1 {
			t.Fatalf("sigmoid(%v)=%v out of [0,1]", z, p)
		}
	}
	if sigmoid(0) != 0.5 {
		t.Fatalf("sigmoid(0)=%v", sigmoid(0))
	}
}
