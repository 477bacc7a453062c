package frm

import (
	"errors"
	"fmt"
)

var ErrInvalidPlan = errors.New("installments must be at least 1")

// EstimateInstallment divides the loan amount evenly over the plan.
func EstimateInstallment(amount float64, installments int) (float64, error) {
	if installments < 1 {
		return 0, ErrInvalidPlan
	}
	return amount / float64(installments), nil
}

// FormatInstallment renders the estimated installment line shown on the
// office loan form, e.g. "$1000.00 per month".
func FormatInstallment(amount float64, plan RepaymentPlan) (string, error) {
	installment, err := EstimateInstallment(amount, plan.Installments)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("$%.2f per %s", installment, plan.Frequency), nil
}
