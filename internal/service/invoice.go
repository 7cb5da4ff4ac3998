package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// InvoiceGenerator renders a cart into a PDF invoice.
type InvoiceGenerator interface {
	Generate(cart *model.Cart) ([]byte, error)
}

// PDFInvoiceGenerator implements InvoiceGenerator with an itemized one-page
// PDF.
type PDFInvoiceGenerator struct {
	merchantName string
}

// NewInvoiceGenerator creates a new PDF invoice generator.
func NewInvoiceGenerator(merchantName string) *PDFInvoiceGenerator {
	if merchantName == "" {
		merchantName = "SmartReturn"
	}
	return &PDFInvoiceGenerator{merchantName: merchantName}
}

// Generate renders the cart's lines and grand total. The total printed is
// exactly the cart's TotalPrice, never a re-sum of rounded line amounts.
func (g *PDFInvoiceGenerator) Generate(cart *model.Cart) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(g.merchantName+" Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, g.merchantName+" Invoice")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Cart: "+cart.ID)
	pdf.Ln(5)
	pdf.Cell(0, 8, "Date: "+time.Now().Format("January 2, 2006"))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range cart.Lines {
		pdf.CellFormat(90, 8, line.Item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, line.Item.Price.Format(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, line.LineTotal().Format(), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, cart.TotalPrice().Format(), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
