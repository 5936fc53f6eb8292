package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/domain"
)

func TestWorkbookSingleSheet(t *testing.T) {
	phone := "+91 98765 43210"
	bookings := []domain.Booking{
		{
			ID:          "b1",
			Name:        "Asha",
			Email:       "a@x.com",
			Phone:       &phone,
			PackageType: "exec",
			PackageName: "Executive Coaching",
			Price:       "₹50,000",
			CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			ID:          "b2",
			Name:        "Ravi",
			Email:       "r@x.com",
			PackageType: "starter",
			PackageName: "Starter",
			Price:       "₹5,000",
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := WriteWorkbook(&buf, Sheet{Name: "Bookings", Records: bookings})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "id", f.GetCellValue("Bookings", "A1"))
	assert.Equal(t, "name", f.GetCellValue("Bookings", "B1"))
	assert.Equal(t, "phone", f.GetCellValue("Bookings", "D1"))

	assert.Equal(t, "Asha", f.GetCellValue("Bookings", "B2"))
	assert.Equal(t, "+91 98765 43210", f.GetCellValue("Bookings", "D2"))
	assert.Equal(t, "₹50,000", f.GetCellValue("Bookings", "G2"))
	assert.Equal(t, "2025-01-02T03:04:05Z", f.GetCellValue("Bookings", "H2"))

	// nil optional renders as an empty cell, not "null"
	assert.Equal(t, "", f.GetCellValue("Bookings", "D3"))
}

func TestWorkbookAllSheetsOnEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&buf,
		Sheet{Name: "Bookings", Records: []domain.Booking{}},
		Sheet{Name: "Contacts", Records: []domain.Contact{}},
		Sheet{Name: "Payments", Records: []domain.Payment{}},
		Sheet{Name: "Downloads", Records: []domain.Download{}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	names := make([]string, 0, 4)
	for _, name := range f.GetSheetMap() {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"Bookings", "Contacts", "Payments", "Downloads"}, names)

	// header row only, no data rows
	assert.Equal(t, "id", f.GetCellValue("Payments", "A1"))
	assert.Equal(t, "", f.GetCellValue("Payments", "A2"))
}

func TestWriteCSV(t *testing.T) {
	contacts := []domain.Contact{
		{
			ID:        "c1",
			Name:      "Asha",
			Email:     "a@x.com",
			Message:   "hello",
			CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, contacts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,email,phone,message,createdAt", lines[0])
	assert.Contains(t, lines[1], "c1,Asha,a@x.com")
	assert.Contains(t, lines[1], "hello")
}

func TestFilenames(t *testing.T) {
	now := time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "bookings_2025-06-07.xlsx", Filename("bookings", now))
	assert.Equal(t, "admin_all_data_2025-06-07.xlsx", Filename("all", now))
	assert.Equal(t, "contacts_2025-06-07.csv", CSVFilename("contacts", now))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Bookings", SheetName("bookings"))
	assert.Equal(t, "Downloads", SheetName("downloads"))
	assert.Equal(t, "", SheetName(""))
}
