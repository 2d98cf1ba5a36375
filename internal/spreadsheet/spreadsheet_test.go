package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

func workbookBytes(t *testing.T, f *excelize.File) *bytes.Reader {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestReadEmployees(t *testing.T) {
	f, err := WriteSchedule(
		[]string{"Shift", "Employee", "Start Time"},
		[][]string{
			{"Toronto (8 AM - 4 PM)", "Alice", "08:00"},
			{"Toronto (8 AM - 4 PM)", "Bob", "08:00"},
			{"Bogotá (7 AM - 4:30 PM)", "Carol", "07:00"},
		},
	)
	require.NoError(t, err)

	employees, err := ReadEmployees(workbookBytes(t, f))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, employees)
}

func TestReadEmployees_SkipsBlankCells(t *testing.T) {
	f, err := WriteSchedule(
		[]string{"Employee"},
		[][]string{{"Alice"}, {"   "}, {""}, {"Bob"}},
	)
	require.NoError(t, err)

	employees, err := ReadEmployees(workbookBytes(t, f))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, employees)
}

func TestReadEmployees_MissingColumn(t *testing.T) {
	f, err := WriteSchedule(
		[]string{"Name", "Shift"},
		[][]string{{"Alice", "Toronto"}},
	)
	require.NoError(t, err)

	_, err = ReadEmployees(workbookBytes(t, f))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestReadEmployees_EmptySheet(t *testing.T) {
	f := excelize.NewFile()

	_, err := ReadEmployees(workbookBytes(t, f))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestReadEmployees_NotAWorkbook(t *testing.T) {
	_, err := ReadEmployees(bytes.NewReader([]byte("not a zip archive")))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingColumn)
}

func TestWriteSchedule_CellLayout(t *testing.T) {
	f, err := WriteSchedule(
		[]string{"Shift", "Employee"},
		[][]string{{"Toronto (8 AM - 4 PM)", "Alice"}},
	)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	value, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Toronto (8 AM - 4 PM)", value)
}
