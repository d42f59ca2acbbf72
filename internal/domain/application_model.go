package domain

import (
	"math"
	"time"
)

// Application is one scored loan application. Rows are append-only: nothing
// in the service updates or deletes them once written.
type Application struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// Applicant input
	Name                   string  `gorm:"not null;size:255" json:"name"`
	Age                    int     `json:"age"`
	Occupation             int     `json:"occupation"`
	AnnualIncome           float64 `json:"annual_income"`
	MonthlySalary          float64 `json:"monthly_salary"`
	NumBankAccounts        int     `json:"num_bank_accounts"`
	NumCreditCard          int     `json:"num_credit_card"`
	InterestRate           int     `json:"interest_rate"`
	NumOfLoan              int     `json:"num_of_loan"`
	DelayFromDueDate       int     `json:"delay_from_due_date"`
	NumDelayedPayment      int     `json:"num_delayed_payment"`
	OutstandingDebt        float64 `json:"outstanding_debt"`
	CreditUtilizationRatio float64 `json:"credit_utilization_ratio"`
	CreditHistoryAge       int     `json:"credit_history_age"`
	TotalEmiPerMonth       float64 `gorm:"column:total_emi_per_month" json:"total_emi_per_month"`
	MonthlyBalance         float64 `json:"monthly_balance"`

	// Scoring output
	CreditScore           int     `json:"credit_score"`
	CreditCategory        string  `gorm:"size:20" json:"credit_category"`
	Decision              string  `gorm:"size:20" json:"decision"`
	PredictionProbability float64 `json:"prediction_probability"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Application) TableName() string { return "applications" }

// ConfidencePercent converts the winning-class probability into the
// percentage shown on the result view, rounded to two decimals.
func (app *Application) ConfidencePercent() float64 {
	return math.Round(app.PredictionProbability*100*100) / 100
}
