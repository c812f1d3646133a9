// Package export renders a user's fruit records into downloadable
// documents. Both formatters are read-only: they stream straight into
// the supplied writer and never touch the store.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

const dateLayout = "2006-01-02"

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"name", "memo", "prayer", "contact_date", "category",
	"follow_up_date", "reminder_date", "outcome", "reason",
	"created_at", "updated_at",
}

// WriteCSV streams the records as CSV: one header row, one row per
// record, dates as 2006-01-02, timestamps as RFC3339, empty string for
// absent optional fields.
func WriteCSV(w io.Writer, fruits []entity.Fruit) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range fruits {
		f := &fruits[i]
		row := []string{
			f.Name,
			f.Memo,
			f.Prayer,
			f.ContactDate.Format(dateLayout),
			f.Category,
			formatOptionalDate(f.FollowUpDate),
			formatOptionalDate(f.ReminderDate),
			f.Outcome,
			f.Reason,
			f.CreatedAt.Format(time.RFC3339),
			f.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
