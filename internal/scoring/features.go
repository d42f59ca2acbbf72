package scoring

import "finch/internal/api/dto"

// FeatureColumns is the classifier's training schema, by name and position.
// The order is a compatibility contract with the exported model: a mismatch
// does not error, it scores wrong. Never reorder.
var FeatureColumns = []string{
	"Month",
	"Age",
	"Occupation",
	"Annual_Income",
	"Monthly_Inhand_Salary",
	"Num_Bank_Accounts",
	"Num_Credit_Card",
	"Interest_Rate",
	"Num_of_Loan",
	"Type_of_Loan",
	"Delay_from_due_date",
	"Num_of_Delayed_Payment",
	"Changed_Credit_Limit",
	"Num_Credit_Inquiries",
	"Credit_Mix",
	"Outstanding_Debt",
	"Credit_Utilization_Ratio",
	"Credit_History_Age",
	"Payment_of_Min_Amount",
	"Total_EMI_per_month",
	"Amount_invested_monthly",
	"Payment_Behaviour",
	"Monthly_Balance",
	"Debt_Ratio",
	"EMI_Ratio",
	"Inquiry_per_Account",
}

// Columns the intake form does not collect are pinned to the constants the
// model was trained against (Credit_Mix=1 is "Good", Payment_of_Min_Amount=1
// is "Yes"). These are part of the current feature schema, not values to
// derive.
const (
	placeholderMonth              = 1
	placeholderTypeOfLoan         = 0
	placeholderChangedCreditLimit = 0
	placeholderCreditInquiries    = 0
	placeholderCreditMix          = 1
	placeholderPaymentOfMinAmount = 1
	placeholderInvestedMonthly    = 0
	placeholderPaymentBehaviour   = 0
)

// Features assembles the 26-element vector for one applicant, in
// FeatureColumns order.
func Features(in dto.ApplicantInput) []float64 {
	debtRatio := 0.0
	if in.AnnualIncome > 0 {
		debtRatio = in.OutstandingDebt / in.AnnualIncome
	}

	emiRatio := 0.0
	if in.MonthlySalary > 0 {
		emiRatio = in.TotalEmiPerMonth / in.MonthlySalary
	}

	inquiryPerAccount := 0.0

	return []float64{
		placeholderMonth,
		float64(in.Age),
		float64(in.Occupation),
		in.AnnualIncome,
		in.MonthlySalary,
		float64(in.NumBankAccounts),
		float64(in.NumCreditCard),
		float64(in.InterestRate),
		float64(in.NumOfLoan),
		placeholderTypeOfLoan,
		float64(in.DelayFromDueDate),
		float64(in.NumDelayedPayment),
		placeholderChangedCreditLimit,
		placeholderCreditInquiries,
		placeholderCreditMix,
		in.OutstandingDebt,
		in.CreditUtilizationRatio,
		float64(in.CreditHistoryAge),
		placeholderPaymentOfMinAmount,
		in.TotalEmiPerMonth,
		placeholderInvestedMonthly,
		placeholderPaymentBehaviour,
		in.MonthlyBalance,
		debtRatio,
		emiRatio,
		inquiryPerAccount,
	}
}
