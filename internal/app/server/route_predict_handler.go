package server

import (
	"net/http"

	"finch/internal/api/dto"
	"finch/internal/database"
	"finch/internal/domain"
	"finch/internal/scoring"

	"github.com/charmbracelet/log"
)

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index.html", nil)
}

// predict runs the whole request pipeline to completion: parse → score →
// persist → render. A failure at any stage renders the error view with a
// 400 and persists nothing.
func (h *Handlers) predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Prediction error: could not read form data")
		return
	}

	in, err := scoring.ParseApplicant(r.PostForm)
	if err != nil {
		log.Warn("Rejected prediction request", "error", err)
		h.renderError(w, http.StatusBadRequest, "Prediction error: "+err.Error())
		return
	}

	result, err := h.pipeline.Score(in)
	if err != nil {
		log.Error("Scoring failed", "applicant", in.Name, "error", err)
		h.renderError(w, http.StatusBadRequest, "Prediction error: "+err.Error())
		return
	}

	application := buildApplication(in, result)
	if err := database.SaveApplication(&application); err != nil {
		log.Error("Failed to persist application", "applicant", in.Name, "error", err)
		h.renderError(w, http.StatusBadRequest, "Prediction error: "+err.Error())
		return
	}

	log.Info("Application scored",
		"applicant", in.Name,
		"score", result.CreditScore,
		"decision", result.Decision,
	)

	h.render(w, http.StatusOK, "result.html", map[string]any{
		"Name":        in.Name,
		"CreditScore": result.CreditScore,
		"Category":    result.Category,
		"Risk":        result.Risk,
		"Decision":    result.Decision,
		"Confidence":  application.ConfidencePercent(),
		"Color":       result.Color,
	})
}

func buildApplication(in dto.ApplicantInput, result dto.ScoringResult) domain.Application {
	return domain.Application{
		Name:                   in.Name,
		Age:                    in.Age,
		Occupation:             in.Occupation,
		AnnualIncome:           in.AnnualIncome,
		MonthlySalary:          in.MonthlySalary,
		NumBankAccounts:        in.NumBankAccounts,
		NumCreditCard:          in.NumCreditCard,
		InterestRate:           in.InterestRate,
		NumOfLoan:              in.NumOfLoan,
		DelayFromDueDate:       in.DelayFromDueDate,
		NumDelayedPayment:      in.NumDelayedPayment,
		OutstandingDebt:        in.OutstandingDebt,
		CreditUtilizationRatio: in.CreditUtilizationRatio,
		CreditHistoryAge:       in.CreditHistoryAge,
		TotalEmiPerMonth:       in.TotalEmiPerMonth,
		MonthlyBalance:         in.MonthlyBalance,
		CreditScore:            result.CreditScore,
		CreditCategory:         result.Category,
		Decision:               result.Decision,
		PredictionProbability:  result.Confidence,
	}
}
