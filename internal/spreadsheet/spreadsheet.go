package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

const employeeColumn = "Employee"

// ReadEmployees extracts the employee names from the first sheet of an
// uploaded workbook. The header row must contain an "Employee" column;
// its absence is reported as ErrMissingColumn before any scheduling runs.
func ReadEmployees(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %q (workbook has no sheets)", domain.ErrMissingColumn, employeeColumn)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q (sheet is empty)", domain.ErrMissingColumn, employeeColumn)
	}

	col := -1
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == employeeColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, employeeColumn)
	}

	employees := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name == "" {
			continue
		}
		employees = append(employees, name)
	}

	return employees, nil
}

// WriteSchedule builds an export workbook from a header and pre-formatted
// rows. The caller owns closing and serializing the file.
func WriteSchedule(header []string, rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
