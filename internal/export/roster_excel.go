package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mathmaster/backend/internal/db"
	"github.com/mathmaster/backend/internal/models"
)

const rosterSheet = "Students"

// RosterWorkbook is the admin export: one row per student, one column per
// billing month, a check mark where the month is paid.
type RosterWorkbook struct {
	File *excelize.File
}

func NewRosterWorkbook(students []models.User, months []string) (*RosterWorkbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := append([]string{"Name", "Contact", "Phone", "Registered"}, months...)
	for col, h := range header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(rosterSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	end := colName(len(header)) + "1"
	_ = f.SetCellStyle(rosterSheet, "A1", end, bold)
	_ = f.AutoFilter(rosterSheet, "A1:"+end, nil)

	for r := range students {
		s := &students[r]
		row := []string{s.Name, s.Contact, s.Phone, s.CreatedAt.Format("2006-01-02")}
		for _, m := range months {
			mark := ""
			if db.CheckPaymentStatus(s, m) {
				mark = "✓"
			}
			row = append(row, mark)
		}
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(rosterSheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// width heuristic: header length vs the first rows of data
	for c := 1; c <= len(header); c++ {
		maxim := len(header[c-1])
		for r := 0; r < minim(50, len(students)); r++ {
			s := &students[r]
			if c == 1 && len(s.Name) > maxim {
				maxim = len(s.Name)
			}
			if c == 2 && len(s.Contact) > maxim {
				maxim = len(s.Contact)
			}
		}
		w := float64(maxim) * 0.9
		if w < 10 {
			w = 10
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(rosterSheet, colName(c), colName(c), w)
	}

	return &RosterWorkbook{File: f}, nil
}

func (w *RosterWorkbook) SaveTemp() (string, error) {
	name := fmt.Sprintf("students_%s.xlsx", time.Now().Format("2006-01-02"))
	path := "/tmp/" + name
	return path, w.File.SaveAs(path)
}

// MonthRange lists n consecutive month keys starting at from's month.
func MonthRange(from time.Time, n int) []string {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, db.MonthKey(start.AddDate(0, i, 0)))
	}
	return out
}

// helpers

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
