package scoring

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"finch/internal/api/dto"
)

// InputError marks a failure caused by the submitted form rather than the
// service. Handlers turn it into a 400.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

func inputErrorf(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err originated from invalid applicant input.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// ParseApplicant validates the raw /predict form into a typed input.
// name, age, annual_income, monthly_salary, num_bank_accounts and
// num_credit_card are mandatory; the remaining fields fall back to their
// documented defaults when absent.
func ParseApplicant(form url.Values) (dto.ApplicantInput, error) {
	var in dto.ApplicantInput
	var err error

	in.Name = strings.TrimSpace(form.Get("name"))
	if in.Name == "" {
		return in, inputErrorf("name is required")
	}

	if in.Age, err = requiredInt(form, "age"); err != nil {
		return in, err
	}
	if in.AnnualIncome, err = requiredFloat(form, "annual_income"); err != nil {
		return in, err
	}
	if in.MonthlySalary, err = requiredFloat(form, "monthly_salary"); err != nil {
		return in, err
	}
	if in.NumBankAccounts, err = requiredInt(form, "num_bank_accounts"); err != nil {
		return in, err
	}
	if in.NumCreditCard, err = requiredInt(form, "num_credit_card"); err != nil {
		return in, err
	}

	if in.Occupation, err = optionalInt(form, "occupation", 0); err != nil {
		return in, err
	}
	if in.InterestRate, err = optionalInt(form, "interest_rate", 10); err != nil {
		return in, err
	}
	if in.NumOfLoan, err = optionalInt(form, "num_of_loan", 0); err != nil {
		return in, err
	}
	if in.DelayFromDueDate, err = optionalInt(form, "delay_from_due_date", 0); err != nil {
		return in, err
	}
	if in.NumDelayedPayment, err = optionalInt(form, "num_delayed_payment", 0); err != nil {
		return in, err
	}
	if in.OutstandingDebt, err = optionalFloat(form, "outstanding_debt", 0); err != nil {
		return in, err
	}
	if in.CreditUtilizationRatio, err = optionalFloat(form, "credit_utilization_ratio", 0); err != nil {
		return in, err
	}
	if in.CreditHistoryAge, err = optionalInt(form, "credit_history_age", 0); err != nil {
		return in, err
	}
	if in.TotalEmiPerMonth, err = optionalFloat(form, "total_emi_per_month", 0); err != nil {
		return in, err
	}
	if in.MonthlyBalance, err = optionalFloat(form, "monthly_balance", 0); err != nil {
		return in, err
	}

	return in, nil
}

func requiredInt(form url.Values, key string) (int, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return 0, inputErrorf("%s is required", key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, inputErrorf("%s must be a whole number, got %q", key, raw)
	}
	return value, nil
}

func requiredFloat(form url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return 0, inputErrorf("%s is required", key)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, inputErrorf("%s must be a number, got %q", key, raw)
	}
	return value, nil
}

func optionalInt(form url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, inputErrorf("%s must be a whole number, got %q", key, raw)
	}
	return value, nil
}

func optionalFloat(form url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, inputErrorf("%s must be a number, got %q", key, raw)
	}
	return value, nil
}
