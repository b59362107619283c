package shopping

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Shopping"

var header = []string{"count", "unit", "ingredient"}

// Export writes the list to path. The format follows the extension:
// .xlsx for a spreadsheet, .csv otherwise.
func (l *List) Export(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return l.WriteXLSX(path)
	case ".csv", "":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("shopping: create %s: %w", path, err)
		}
		if err := l.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("shopping: unsupported export format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// WriteCSV writes a header row and one row per item.
func (l *List) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("shopping: write csv: %w", err)
	}
	for _, item := range l.Items() {
		if err := cw.Write([]string{countCell(item.Count), item.Unit, item.Name}); err != nil {
			return fmt.Errorf("shopping: write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the list to a single-sheet workbook at path.
func (l *List) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("shopping: rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("shopping: stream writer: %w", err)
	}

	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return fmt.Errorf("shopping: write header: %w", err)
	}

	for i, item := range l.Items() {
		var count interface{} = ""
		if item.Count != nil {
			count = *item.Count
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{count, item.Unit, item.Name}); err != nil {
			return fmt.Errorf("shopping: write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("shopping: flush: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("shopping: save %s: %w", path, err)
	}
	return nil
}

func countCell(c *float64) string {
	if c == nil {
		return ""
	}
	return strconv.FormatFloat(*c, 'f', -1, 64)
}
