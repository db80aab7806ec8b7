package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNothingToExport means the filtered view holds no rows.
var ErrNothingToExport = errors.New("no students to export")

var csvHeader = []string{"Name", "Email", "Phone", "Course", "Status"}

// ExportCSV renders the currently filtered view as CSV and returns the
// bytes plus a date-stamped filename (students_YYYY-MM-DD.csv). Every
// field is double-quote enclosed with inner quotes doubled, matching the
// header row Name,Email,Phone,Course,Status.
func (c *Controller) ExportCSV() ([]byte, string, error) {
	rows := c.Filtered()
	if len(rows) == 0 {
		return nil, "", ErrNothingToExport
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, s := range rows {
		b.WriteByte('\n')
		fields := []string{s.Name, s.Email, s.Phone, s.Course, s.Status}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSV(f))
		}
	}

	filename := fmt.Sprintf("students_%s.csv", time.Now().Format("2006-01-02"))
	return []byte(b.String()), filename, nil
}

// escapeCSV quotes a field unconditionally, doubling inner quotes.
func escapeCSV(val string) string {
	return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
}
