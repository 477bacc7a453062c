package payslip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func sample() Data {
	return Data{
		EmployeeName: "Ada Lovelace",
		Email:        "ada@erpdesk.local",
		Period:       "2026-01",
		Basic:        3000,
		Allowances:   800,
		Deductions:   500,
		Net:          3300,
		Currency:     "USD",
	}
}

func TestRenderWritesPDF(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "slips", "jan.pdf")

	if err := Render(sample(), dest); err != nil {
		t.Fatalf("render: %v", err)
	}

	blob, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read rendered file: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", blob[:8])
	}
}

func TestBytes(t *testing.T) {
	blob, err := Bytes(sample())
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}
