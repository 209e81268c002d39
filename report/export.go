package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"rental-yield/domain"
)

const DefaultSheetName = "Projection"

// WriteCSV writes one header line and one line per ledger year. Amounts are
// written with two decimals.
func WriteCSV(w io.Writer, ledger domain.Ledger) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range ledger {
		values := Values(row)
		record := make([]string, len(values))
		record[0] = strconv.Itoa(row.Year)
		for i := 1; i < len(values); i++ {
			record[i] = strconv.FormatFloat(values[i], 'f', 2, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv year %d: %w", row.Year, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes the ledger to a single-sheet workbook.
func WriteXLSX(w io.Writer, ledger domain.Ledger, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for idx, row := range ledger {
		values := Values(row)
		cells := make([]interface{}, len(values))
		cells[0] = row.Year
		for i := 1; i < len(values); i++ {
			cells[i] = roundCents(values[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write year %d: %w", row.Year, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 6); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", lastCol, 20); err != nil {
		return err
	}

	return f.Write(w)
}
