// Package report renders a scan result as an xlsx workbook.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"filecredit/internal/domain"
)

const (
	DefaultName  = "file_credit_report"
	FilesSheet   = "Files"
	SummarySheet = "Summary"
	Ext          = ".xlsx"

	timestampLayout = "20060102_150405"
)

var (
	fileHeaders    = []string{"Path", "File name", "Type", "Size", "Pages", "A4 pages", "Credits"}
	fileWidths     = []float64{50, 30, 10, 12, 10, 12, 10}
	summaryHeaders = []string{"Type", "Files", "Total size (MB)", "Pages", "A4 pages", "Credits"}
	summaryWidths  = []float64{16, 10, 16, 10, 12, 12}
)

// FileName returns "<name>_<YYYYMMDD>_<HHMMSS>.xlsx".
func FileName(name string, now time.Time) string {
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf("%s_%s%s", name, now.Format(timestampLayout), Ext)
}

// PathFor places the report for res inside the scanned root.
func PathFor(res domain.ScanResult, name string, now time.Time) string {
	return filepath.Join(res.Root, FileName(name, now))
}

// HumanSize formats a byte count as B, K or M with two decimals.
func HumanSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2fK", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2fM", float64(size)/(1024*1024))
	}
}

func megabytes(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/(1024*1024))
}

// Write renders res and stores the workbook at path. Any failure is a
// report_write_failed error; a partially written file is removed.
func Write(fsys afero.Fs, path string, res domain.ScanResult) error {
	book, err := Build(res)
	if err != nil {
		return writeFailed(path, err)
	}
	defer book.Close()

	out, err := fsys.Create(path)
	if err != nil {
		return writeFailed(path, err)
	}

	if err := book.Write(out); err != nil {
		_ = out.Close()
		_ = fsys.Remove(path)
		return writeFailed(path, err)
	}
	if err := out.Close(); err != nil {
		_ = fsys.Remove(path)
		return writeFailed(path, err)
	}
	return nil
}

func writeFailed(path string, err error) error {
	return &domain.Error{Code: domain.ErrCodeReportWriteFailed, Path: path, Err: err}
}

// Build lays out the detail and summary sheets.
func Build(res domain.ScanResult) (*excelize.File, error) {
	book := excelize.NewFile()

	if err := book.SetSheetName("Sheet1", FilesSheet); err != nil {
		book.Close()
		return nil, err
	}
	if _, err := book.NewSheet(SummarySheet); err != nil {
		book.Close()
		return nil, err
	}

	s, err := newStyles(book)
	if err != nil {
		book.Close()
		return nil, err
	}

	if err := writeFiles(book, s, res); err != nil {
		book.Close()
		return nil, err
	}
	if err := writeSummary(book, s, res); err != nil {
		book.Close()
		return nil, err
	}

	book.SetActiveSheet(0)
	return book, nil
}

func writeFiles(book *excelize.File, s styles, res domain.ScanResult) error {
	if err := writeHeader(book, s, FilesSheet, fileHeaders, fileWidths); err != nil {
		return err
	}

	for i, r := range res.Records {
		row := []interface{}{
			filepath.ToSlash(r.Path),
			r.Name,
			r.Kind.String(),
			HumanSize(r.Size),
			r.Pages,
			r.A4Pages,
			r.Score,
		}
		if err := writeRow(book, FilesSheet, i+2, row, []int{s.text, s.text, s.text, s.number, s.number, s.number, s.number}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(book *excelize.File, s styles, res domain.ScanResult) error {
	if err := writeHeader(book, s, SummarySheet, summaryHeaders, summaryWidths); err != nil {
		return err
	}

	rowStyles := []int{s.text, s.number, s.number, s.number, s.number, s.number}
	row := 2
	for _, kind := range res.Kinds() {
		t := res.ByKind[kind]
		values := []interface{}{kind.String(), t.Count, megabytes(t.Size), t.Pages, t.A4Pages, t.Score}
		if err := writeRow(book, SummarySheet, row, values, rowStyles); err != nil {
			return err
		}
		row++
	}

	t := res.Total
	totalStyles := []int{s.total, s.totalNumber, s.totalNumber, s.totalNumber, s.totalNumber, s.totalNumber}
	if err := writeRow(book, SummarySheet, row, []interface{}{"Total", t.Count, megabytes(t.Size), t.Pages, t.A4Pages, t.Score}, totalStyles); err != nil {
		return err
	}

	return writeCredits(book, s, row+2, t.Score)
}

// writeCredits writes the highlighted "Total credits" line at row.
func writeCredits(book *excelize.File, s styles, row, score int) error {
	label, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	value, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return err
	}
	if err := book.SetCellValue(SummarySheet, label, "Total credits"); err != nil {
		return err
	}
	if err := book.SetCellValue(SummarySheet, value, score); err != nil {
		return err
	}
	if err := book.SetCellStyle(SummarySheet, label, label, s.highlightLabel); err != nil {
		return err
	}
	return book.SetCellStyle(SummarySheet, value, value, s.highlightValue)
}

func writeHeader(book *excelize.File, s styles, sheet string, headers []string, widths []float64) error {
	values := make([]interface{}, len(headers))
	rowStyles := make([]int, len(headers))
	for i, h := range headers {
		values[i] = h
		rowStyles[i] = s.header

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := book.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	return writeRow(book, sheet, 1, values, rowStyles)
}

func writeRow(book *excelize.File, sheet string, row int, values []interface{}, rowStyles []int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := book.SetSheetRow(sheet, start, &values); err != nil {
		return err
	}
	for i, style := range rowStyles {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := book.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}
