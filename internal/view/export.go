package view

import (
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

// WriteCSV writes the display table as CSV with a header row.
func WriteCSV(w io.Writer, dt DisplayTable) error {
	b, err := csvutil.Marshal(dt.Rows)
	if err != nil {
		return eris.Wrap(err, "view: marshal csv")
	}
	if len(dt.Rows) == 0 {
		b = []byte(ColumnCountry + "," + ColumnAcceptance + "\n")
	}
	if _, err := w.Write(b); err != nil {
		return eris.Wrap(err, "view: write csv")
	}
	return nil
}

// WriteXLSX writes the display table to a single-sheet workbook. The
// acceptance column holds the formatted string, matching the on-screen table.
func WriteXLSX(w io.Writer, sheet string, dt DisplayTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = "Acceptance"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return eris.Wrap(err, "view: name sheet")
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	for i, c := range dt.Columns {
		if err := set(i+1, 1, c); err != nil {
			return eris.Wrap(err, "view: write xlsx header")
		}
	}
	for i, r := range dt.Rows {
		if err := set(1, i+2, r.Country); err != nil {
			return eris.Wrap(err, "view: write xlsx row")
		}
		if err := set(2, i+2, r.Acceptance); err != nil {
			return eris.Wrap(err, "view: write xlsx row")
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "view: write xlsx")
	}
	return nil
}
