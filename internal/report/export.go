package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet in XLSX exports.
const SheetName = "Deposits"

// Header are the columns of the export.
var Header = []string{"No", "Month", "Year", "Source", "Allocations", "Amount"}

// Dataset is a report flattened into rows. The cells of all rows except the
// last are int, string or decimal.Decimal. The last row only has a value in
// the Amount column, which is the text "Total Amount: {total}".
type Dataset struct {
	Header []string
	Rows   [][]any
}

// Project flattens the report into a dataset.
func Project(r Report) Dataset {
	rows := make([][]any, 0, len(r.Lines)+1)
	for i, l := range r.Lines {
		rows = append(rows, []any{i + 1, l.Month, l.Year, l.SourceName, l.Allocations(), l.Amount})
	}

	rows = append(rows, []any{"", "", "", "", "", TotalLabel(r.TotalAmount)})

	return Dataset{
		Header: Header,
		Rows:   rows,
	}
}

// TotalLabel is the content of the Amount cell of the trailing row.
func TotalLabel(total decimal.Decimal) string {
	return fmt.Sprintf("Total Amount: %s", total)
}

// Records returns the header and all rows as strings.
func (d Dataset) Records() [][]string {
	records := make([][]string, 0, len(d.Rows)+1)
	records = append(records, d.Header)

	for _, row := range d.Rows {
		record := make([]string, 0, len(row))
		for _, cell := range row {
			record = append(record, fmt.Sprint(cell))
		}
		records = append(records, record)
	}

	return records
}

// WriteCSV writes the dataset as CSV.
func (d Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(d.Records()); err != nil {
		return fmt.Errorf("could not write CSV export: %w", err)
	}
	return nil
}

// WriteXLSX writes the dataset as a workbook with a single sheet. Amounts are
// written as numbers, the total label as text.
func (d Dataset) WriteXLSX(w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// New files have one sheet named "Sheet1"
	if err = f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("could not name export sheet: %w", err)
	}

	header := make([]any, 0, len(d.Header))
	for _, h := range d.Header {
		header = append(header, h)
	}

	rows := append([][]any{header}, d.Rows...)
	for i, row := range rows {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			if amount, ok := cell.(decimal.Decimal); ok {
				cell = amount.InexactFloat64()
			}
			cells = append(cells, cell)
		}

		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return fmt.Errorf("could not write export row %d: %w", i+1, err)
		}
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write XLSX export: %w", err)
	}

	return nil
}
