package frm

import (
	"testing"
	"time"
)

func TestEstimateInstallment(t *testing.T) {
	got, err := EstimateInstallment(12000, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1000 {
		t.Fatalf("expected 1000, got %v", got)
	}
}

func TestEstimateInstallmentRejectsEmptyPlan(t *testing.T) {
	if _, err := EstimateInstallment(12000, 0); err == nil {
		t.Fatal("expected error for zero installments")
	}
}

func TestFormatInstallment(t *testing.T) {
	plan := RepaymentPlan{
		Installments: 12,
		Frequency:    FrequencyMonthly,
		StartDate:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	got, err := FormatInstallment(12000, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$1000.00 per month" {
		t.Fatalf("unexpected installment line: %q", got)
	}
}

func TestFormatInstallmentUnevenAmount(t *testing.T) {
	plan := RepaymentPlan{Installments: 3, Frequency: FrequencyWeekly}

	got, err := FormatInstallment(1000, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$333.33 per week" {
		t.Fatalf("unexpected installment line: %q", got)
	}
}
