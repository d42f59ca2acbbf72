package scoring

import (
	"fmt"

	"finch/internal/api/dto"
	"finch/internal/domain"
)

// Classifier is the externally trained model. The service never looks inside
// it; it only needs the predicted label and the class probabilities.
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// Pipeline turns a validated applicant into a score, category and decision.
// It is pure: no persistence, no rendering, no retained state beyond the
// classifier handle loaded at startup.
type Pipeline struct {
	classifier Classifier
}

func NewPipeline(classifier Classifier) *Pipeline {
	return &Pipeline{classifier: classifier}
}

func (p *Pipeline) Score(in dto.ApplicantInput) (dto.ScoringResult, error) {
	features := Features(in)

	label, err := p.classifier.Predict(features)
	if err != nil {
		return dto.ScoringResult{}, fmt.Errorf("scoring failed: %w", err)
	}

	probabilities, err := p.classifier.PredictProba(features)
	if err != nil {
		return dto.ScoringResult{}, fmt.Errorf("scoring failed: %w", err)
	}

	score, category, color, err := domain.CalculateCreditScore(label, probabilities)
	if err != nil {
		return dto.ScoringResult{}, fmt.Errorf("scoring failed: %w", err)
	}

	decision, risk := domain.Decide(score)

	return dto.ScoringResult{
		CreditScore: score,
		Category:    category,
		Color:       color,
		Decision:    decision,
		Risk:        risk,
		Confidence:  probabilities[label],
	}, nil
}
