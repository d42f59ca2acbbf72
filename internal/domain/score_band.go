package domain

import (
	"fmt"
	"math"
)

const (
	DecisionApproved = "Approved"
	DecisionReview   = "Review Required"
	DecisionRejected = "Rejected"

	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// ScoreBand maps one classifier label onto a numeric credit-score range.
type ScoreBand struct {
	Name  string
	Min   int
	Max   int
	Color string
}

// ScoreBands is keyed by the classifier's label set {0,1,2}. Fixed at
// compile time, never mutated.
var ScoreBands = map[int]ScoreBand{
	0: {Name: "Poor", Min: 300, Max: 579, Color: "red"},
	1: {Name: "Standard", Min: 580, Max: 669, Color: "orange"},
	2: {Name: "Good", Min: 670, Max: 850, Color: "green"},
}

// CalculateCreditScore places the predicted label inside its band,
// proportionally to the classifier's confidence in that label. A confidence
// of 0 lands on the band minimum, 1 on the band maximum.
func CalculateCreditScore(label int, probabilities []float64) (score int, category, color string, err error) {
	band, ok := ScoreBands[label]
	if !ok {
		return 0, "", "", fmt.Errorf("no score band for label %d", label)
	}
	if label >= len(probabilities) {
		return 0, "", "", fmt.Errorf("probability vector has %d entries, need label %d", len(probabilities), label)
	}

	confidence := probabilities[label]
	// Epsilon keeps binary float noise (180*0.7 = 125.999...) from pulling
	// the floored score one point below the intended value.
	score = band.Min + int(math.Floor(float64(band.Max-band.Min)*confidence+1e-9))
	return score, band.Name, band.Color, nil
}

// Decide derives the approval decision and risk label from the credit score
// alone. The partition points are 670 and 580.
func Decide(creditScore int) (decision, risk string) {
	switch {
	case creditScore >= 670:
		return DecisionApproved, RiskLow
	case creditScore >= 580:
		return DecisionReview, RiskMedium
	default:
		return DecisionRejected, RiskHigh
	}
}
