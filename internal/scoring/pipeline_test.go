package scoring

import (
	"errors"
	"testing"

	"finch/internal/api/dto"
	"finch/internal/domain"
)

// stubClassifier returns canned predictions so pipeline behaviour can be
// pinned independently of any trained artifact.
type stubClassifier struct {
	label         int
	probabilities []float64
	err           error
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.label, nil
}

func (s *stubClassifier) PredictProba(features []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.probabilities, nil
}

func TestFeaturesOrderAndPlaceholders(t *testing.T) {
	in := dto.ApplicantInput{
		Name:                   "Jamie",
		Age:                    30,
		Occupation:             2,
		AnnualIncome:           50000,
		MonthlySalary:          4000,
		NumBankAccounts:        3,
		NumCreditCard:          2,
		InterestRate:           12,
		OutstandingDebt:        10000,
		TotalEmiPerMonth:       400,
		CreditUtilizationRatio: 35.5,
		MonthlyBalance:         500,
	}

	features := Features(in)
	if len(features) != len(FeatureColumns) {
		t.Fatalf("feature vector has %d elements, want %d", len(features), len(FeatureColumns))
	}

	at := func(column string) float64 {
		t.Helper()
		for i, name := range FeatureColumns {
			if name == column {
				return features[i]
			}
		}
		t.Fatalf("column %s not in schema", column)
		return 0
	}

	if at("Month") != 1 || at("Type_of_Loan") != 0 || at("Credit_Mix") != 1 || at("Payment_of_Min_Amount") != 1 {
		t.Fatalf("placeholder columns wrong: %v", features)
	}
	if at("Age") != 30 || at("Annual_Income") != 50000 || at("Monthly_Inhand_Salary") != 4000 {
		t.Fatalf("input columns wrong: %v", features)
	}
	if at("Debt_Ratio") != 10000.0/50000.0 {
		t.Fatalf("Debt_Ratio = %v, want 0.2", at("Debt_Ratio"))
	}
	if at("EMI_Ratio") != 400.0/4000.0 {
		t.Fatalf("EMI_Ratio = %v, want 0.1", at("EMI_Ratio"))
	}
	if at("Inquiry_per_Account") != 0 {
		t.Fatalf("Inquiry_per_Account = %v, want 0", at("Inquiry_per_Account"))
	}
}

func TestFeaturesZeroDenominators(t *testing.T) {
	in := dto.ApplicantInput{
		OutstandingDebt:  10000,
		TotalEmiPerMonth: 400,
		AnnualIncome:     0,
		MonthlySalary:    -1,
	}

	features := Features(in)
	debtRatio := features[len(features)-3]
	emiRatio := features[len(features)-2]

	if debtRatio != 0 {
		t.Fatalf("debt_ratio with zero income = %v, want 0", debtRatio)
	}
	if emiRatio != 0 {
		t.Fatalf("emi_ratio with negative salary = %v, want 0", emiRatio)
	}
}

func TestPipelineScoreEndToEnd(t *testing.T) {
	pipeline := NewPipeline(&stubClassifier{label: 2, probabilities: []float64{0.1, 0.2, 0.7}})

	in := dto.ApplicantInput{
		Name:            "Jamie",
		Age:             30,
		Occupation:      2,
		AnnualIncome:    50000,
		MonthlySalary:   4000,
		NumBankAccounts: 3,
		NumCreditCard:   2,
		InterestRate:    12,
		OutstandingDebt: 10000,
		MonthlyBalance:  500,
	}

	result, err := pipeline.Score(in)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if result.CreditScore != 796 {
		t.Fatalf("credit score = %d, want 796", result.CreditScore)
	}
	if result.Category != "Good" || result.Color != "green" {
		t.Fatalf("category/color = %s/%s, want Good/green", result.Category, result.Color)
	}
	if result.Decision != domain.DecisionApproved || result.Risk != domain.RiskLow {
		t.Fatalf("decision/risk = %s/%s, want Approved/Low Risk", result.Decision, result.Risk)
	}
	if result.Confidence != 0.7 {
		t.Fatalf("confidence = %v, want 0.7", result.Confidence)
	}
}

func TestPipelineScoreClassifierFailure(t *testing.T) {
	wantErr := errors.New("model exploded")
	pipeline := NewPipeline(&stubClassifier{err: wantErr})

	_, err := pipeline.Score(dto.ApplicantInput{Name: "Jamie"})
	if err == nil {
		t.Fatal("expected error from failing classifier, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("error %v does not wrap classifier failure", err)
	}
}

func TestPipelineScoreBadLabel(t *testing.T) {
	pipeline := NewPipeline(&stubClassifier{label: 7, probabilities: []float64{0.1, 0.2, 0.7}})

	if _, err := pipeline.Score(dto.ApplicantInput{Name: "Jamie"}); err == nil {
		t.Fatal("expected error for out-of-range label, got nil")
	}
}
