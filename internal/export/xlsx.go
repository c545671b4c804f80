package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aliyacapital/seriesdash/internal/schema"
)

// ContentType is the MIME type of WriteXLSX output.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Built-in excelize number formats.
const (
	numFmtCurrency = 7  // $#,##0.00_);($#,##0.00)
	numFmtPercent  = 10 // 0.00%
	numFmtNumber   = 4  // #,##0.00
)

// WriteXLSX writes each table to its own sheet. Numeric cells keep their raw
// value and carry a number format, so the workbook stays sortable.
func WriteXLSX(w io.Writer, tables ...*Table) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, t := range tables {
		name := sheetName(t.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to name sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, t, styles); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header int
	byKind map[schema.Kind]int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	s := sheetStyles{byKind: map[schema.Kind]int{}}
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDE4EE"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	for kind, numFmt := range map[schema.Kind]int{
		schema.KindCurrency:   numFmtCurrency,
		schema.KindPercentage: numFmtPercent,
		schema.KindNumber:     numFmtNumber,
	} {
		id, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
		if err != nil {
			return s, fmt.Errorf("failed to create number style: %w", err)
		}
		s.byKind[kind] = id
	}
	return s, nil
}

func writeSheet(f *excelize.File, sheet string, t *Table, styles sheetStyles) error {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, styles.header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		for c, col := range t.Columns {
			if c >= len(row) || row[c] == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			value := row[c]
			if col.Kind != schema.KindText {
				if v, ok := schema.ToFloat(value); ok {
					value = v
					if err := f.SetCellStyle(sheet, cell, cell, styles.byKind[col.Kind]); err != nil {
						return err
					}
				}
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

// sheetName trims name to Excel's 31 character limit and strips characters
// Excel rejects.
func sheetName(name string, i int) string {
	clean := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) == 0 {
		return fmt.Sprintf("Sheet%d", i+1)
	}
	if len(clean) > 31 {
		clean = clean[:31]
	}
	return string(clean)
}
