// Package export converts entity collections into downloadable tabular
// files. Workbooks follow the admin dashboard convention: one sheet per
// entity, columns in the record's field order, null optionals as empty
// cells.
package export

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/coachdesk/coachdesk/pkg/common"
)

// Sheet pairs a sheet name with a slice of records.
type Sheet struct {
	Name    string
	Records interface{}
}

// Workbook builds an xlsx file with one sheet per argument. An empty
// record slice still produces a valid sheet with its header row.
func Workbook(sheets ...Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, errors.New("workbook needs at least one sheet")
	}
	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.Name)
		} else {
			f.NewSheet(sheet.Name)
		}
		if err := fillSheet(f, sheet.Name, sheet.Records); err != nil {
			return nil, errors.Wrapf(err, "sheet %s", sheet.Name)
		}
	}
	f.SetActiveSheet(1)
	return f, nil
}

// WriteWorkbook renders the sheets and writes the xlsx bytes to w.
func WriteWorkbook(w io.Writer, sheets ...Sheet) error {
	f, err := Workbook(sheets...)
	if err != nil {
		return err
	}
	return errors.Wrap(f.Write(w), "write workbook")
}

// WriteCSV writes one collection as CSV, headers from the record's csv
// tags.
func WriteCSV(w io.Writer, records interface{}) error {
	return errors.Wrap(gocsv.Marshal(records, w), "write csv")
}

// SheetName capitalizes an entity name the way the dashboard titles its
// sheets ("bookings" -> "Bookings").
func SheetName(entity string) string {
	if entity == "" {
		return entity
	}
	return strings.ToUpper(entity[:1]) + entity[1:]
}

// Filename embeds the entity name and current date for uniqueness.
func Filename(entity string, now time.Time) string {
	if entity == "all" {
		return fmt.Sprintf("admin_all_data_%s.xlsx", common.DateStamp(now))
	}
	return fmt.Sprintf("%s_%s.xlsx", entity, common.DateStamp(now))
}

// CSVFilename is the CSV counterpart of Filename.
func CSVFilename(entity string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", entity, common.DateStamp(now))
}

func fillSheet(f *excelize.File, name string, records interface{}) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return errors.Errorf("records must be a slice, got %T", records)
	}
	recordType := v.Type().Elem()
	if recordType.Kind() != reflect.Struct {
		return errors.Errorf("records must be structs, got %s", recordType)
	}

	headers := columnHeaders(recordType)
	for col, header := range headers {
		f.SetCellValue(name, axis(col, 1), header)
	}
	for i := 0; i < v.Len(); i++ {
		record := v.Index(i)
		for col := range headers {
			f.SetCellValue(name, axis(col, i+2), cellValue(record.Field(col)))
		}
	}
	return nil
}

// columnHeaders derives column names from json tags in declared field
// order, matching the JSON shape the admin export endpoints serve.
func columnHeaders(t reflect.Type) []string {
	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			name = t.Field(i).Name
		}
		headers = append(headers, name)
	}
	return headers
}

func cellValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch val := v.Interface().(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func axis(col, row int) string {
	return excelize.ToAlphaString(col) + strconv.Itoa(row)
}
