package model

import (
	"fmt"
	"math"
)

// LogisticClassifier is a multinomial logistic regression exported from the
// training run. It is treated as opaque: coefficients come from the artifact
// file, nothing in this service ever adjusts them.
type LogisticClassifier struct {
	ModelType    string      `json:"model_type"`
	FeatureNames []string    `json:"feature_names"`
	Coefficients [][]float64 `json:"coefficients"` // one row per class
	Intercepts   []float64   `json:"intercepts"`
}

// Predict returns the class label with the highest probability.
func (c *LogisticClassifier) Predict(features []float64) (int, error) {
	probabilities, err := c.PredictProba(features)
	if err != nil {
		return 0, err
	}

	best := 0
	for i, p := range probabilities {
		if p > probabilities[best] {
			best = i
		}
	}
	return best, nil
}

// PredictProba returns the softmax distribution over the class labels.
// The result always sums to 1.
func (c *LogisticClassifier) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(c.FeatureNames) {
		return nil, fmt.Errorf("model expects %d features, got %d", len(c.FeatureNames), len(features))
	}

	logits := make([]float64, len(c.Coefficients))
	for class, row := range c.Coefficients {
		sum := c.Intercepts[class]
		for i, weight := range row {
			sum += weight * features[i]
		}
		logits[class] = sum
	}

	// Subtract the max logit before exponentiating so large magnitudes
	// cannot overflow.
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	total := 0.0
	probabilities := make([]float64, len(logits))
	for i, l := range logits {
		probabilities[i] = math.Exp(l - maxLogit)
		total += probabilities[i]
	}
	for i := range probabilities {
		probabilities[i] /= total
	}

	return probabilities, nil
}
