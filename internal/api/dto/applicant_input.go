package dto

// ApplicantInput is the validated, typed form of a /predict submission.
// Parsing the raw form into this struct happens before anything touches the
// classifier, so an invalid value never becomes a silent placeholder
// mid-pipeline.
type ApplicantInput struct {
	Name                   string
	Age                    int
	Occupation             int
	AnnualIncome           float64
	MonthlySalary          float64
	NumBankAccounts        int
	NumCreditCard          int
	InterestRate           int
	NumOfLoan              int
	DelayFromDueDate       int
	NumDelayedPayment      int
	OutstandingDebt        float64
	CreditUtilizationRatio float64
	CreditHistoryAge       int
	TotalEmiPerMonth       float64
	MonthlyBalance         float64
}
