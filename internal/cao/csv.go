package cao

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// headerMarker is contained in the first header column of the CSV.
const headerMarker = "国民の祝日"

// Holiday is one row of the official list.
type Holiday struct {
	Date time.Time // midnight UTC
	Name string
}

// decode converts the Shift-JIS payload to UTF-8. Payloads that are already
// UTF-8 are returned unchanged.
func decode(body []byte) io.Reader {
	if utf8.Valid(body) && bytes.Contains(body, []byte(headerMarker)) {
		return bytes.NewReader(body)
	}
	return transform.NewReader(bytes.NewReader(body), japanese.ShiftJIS.NewDecoder())
}

// ParseCSV parses the Cabinet Office holiday CSV and validates its format.
// Rows with an empty date or name are skipped.
func ParseCSV(r io.Reader) ([]Holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if len(header) < 2 {
		return nil, errors.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}
	if !strings.Contains(header[0], headerMarker) {
		return nil, errors.Errorf("unexpected header: %q (expected to contain '%s')", header[0], headerMarker)
	}

	var holidays []Holiday
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}

		if len(record) < 2 {
			return nil, errors.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		t, err := time.Parse("2006/1/2", dateStr)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid date %q", lineNum, dateStr)
		}

		holidays = append(holidays, Holiday{Date: t, Name: name})
	}

	return holidays, nil
}
