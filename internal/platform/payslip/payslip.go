// Package payslip renders a payroll record as a PDF. The devserver uses
// it to serve the download endpoint; the workstation uses it to export a
// payslip offline from the cached collection.
package payslip

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

type Data struct {
	EmployeeName string
	Email        string
	Period       string
	Basic        float64
	Allowances   float64
	Deductions   float64
	Net          float64
	Currency     string
}

func build(data Data) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", data.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", data.Period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %.2f %s", data.Basic, data.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f %s", data.Allowances, data.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f %s", data.Deductions, data.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f %s", data.Net, data.Currency))
	return pdf
}

// Render writes the payslip PDF to dest, creating parent directories as
// needed.
func Render(data Data, dest string) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return build(data).OutputFileAndClose(dest)
}

// Bytes renders the payslip into memory for the download endpoint.
func Bytes(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := build(data).Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
