package export

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

// WritePDF renders the records as a paginated PDF, one titled block per
// record with a separator line, and streams the document into w.
func WritePDF(w io.Writer, fruits []entity.Fruit) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CHUSU NOTE - Fruits", false)
	// Core fonts are cp1252; translate UTF-8 input accordingly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("CHUSU NOTE - Fruit Records"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i := range fruits {
		f := &fruits[i]

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(f.Name), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		writeField(pdf, tr, "Memo", f.Memo)
		writeField(pdf, tr, "Prayer", f.Prayer)
		writeField(pdf, tr, "Contact date", f.ContactDate.Format(dateLayout))
		writeField(pdf, tr, "Category", f.Category)
		writeField(pdf, tr, "Follow-up date", formatOptionalDate(f.FollowUpDate))
		writeField(pdf, tr, "Reminder date", formatOptionalDate(f.ReminderDate))
		writeField(pdf, tr, "Outcome", f.Outcome)
		writeField(pdf, tr, "Reason", f.Reason)
		writeField(pdf, tr, "Created", f.CreatedAt.Format(time.RFC3339))
		writeField(pdf, tr, "Updated", f.UpdatedAt.Format(time.RFC3339))

		// Separator between records
		pdf.Ln(2)
		x, y := pdf.GetXY()
		pdf.Line(x, y, 200, y)
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func writeField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}
