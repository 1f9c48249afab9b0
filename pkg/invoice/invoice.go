package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Invoice is the printable document model for a saved order.
// Monetary values are decimal; formatting always uses two decimals.
type Invoice struct {
	InvoiceNumber string
	CompanyName   string
	BillTo        string
	Currency      string
	InvoiceDate   string
	Items         []Item
	SubTotal      float64
	Tax           float64
	Discount      float64
	Total         float64
	AmountPaid    float64
	BalanceDue    float64
	Status        string
	PaymentMethod string
}

// Item represents one line on the invoice.
type Item struct {
	Description string
	UnitCost    float64
	Quantity    int
	Amount      float64
}

// money formats an amount with the invoice currency, two decimals.
// Symbols outside the PDF core font set fall back to the currency code.
func (inv Invoice) money(amount float64) string {
	cur := inv.Currency
	if cur != "$" && len(cur) > 0 && cur[0] > 0x7f {
		cur = "INR"
	}
	return fmt.Sprintf("%s %.2f", cur, amount)
}

// Render produces the invoice as a PDF document.
func (inv Invoice) Render() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, inv.CompanyName)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(120, 6, "Invoice No: "+inv.InvoiceNumber)
	pdf.CellFormat(0, 6, "Date: "+inv.InvoiceDate, "", 1, "R", false, 0, "")
	pdf.Cell(120, 6, "Bill To: "+inv.BillTo)
	pdf.CellFormat(0, 6, "Status: "+inv.Status, "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Line item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(90, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, inv.money(item.UnitCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, inv.money(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal", inv.SubTotal},
		{"Tax", inv.Tax},
		{"Discount", -inv.Discount},
		{"Total", inv.Total},
		{"Amount Paid", inv.AmountPaid},
		{"Balance Due", inv.BalanceDue},
	}
	for _, row := range summary {
		style := ""
		if row.label == "Total" || row.label == "Balance Due" {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(140, 7, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, inv.money(row.value), "", 1, "R", false, 0, "")
	}

	if inv.PaymentMethod != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 6, "Payment method: "+inv.PaymentMethod)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
