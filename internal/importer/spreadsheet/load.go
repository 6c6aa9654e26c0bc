// Package spreadsheet reads uploaded bank exports into a types.Sheet.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/SuHyeon515/wky-report/internal/importer/types"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var ErrParse = errors.New("spreadsheet parse failed")

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Extensions that are read as Office Open XML workbooks first. Files
// without extension are tried as workbooks, too.
var workbookExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ""}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the first sheet of a workbook or a CSV file.
//
// The reader is chosen by the file extension. If that fails, the content is
// tried as workbook, then as CSV with invalid UTF-8 removed. The returned
// error lists every failed attempt.
func Load(content []byte, filename string) (types.Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var attempts []string
	fail := func(name string, err error) {
		attempts = append(attempts, fmt.Sprintf("%s: %v", name, err))
	}

	if slices.Contains(workbookExtensions, ext) {
		sheet, err := readWorkbook(content)
		if err == nil {
			return sheet, nil
		}
		fail("xlsx", err)
	}

	if ext == ".csv" {
		sheet, err := readCSV(content)
		if err == nil {
			return sheet, nil
		}
		fail("csv(utf-8)", err)

		sheet, err = readEUCKR(content)
		if err == nil {
			return sheet, nil
		}
		fail("csv(cp949)", err)
	}

	if !slices.Contains(workbookExtensions, ext) {
		sheet, err := readWorkbook(content)
		if err == nil {
			return sheet, nil
		}
		fail("xlsx fallback", err)
	}

	sheet, err := readCSVLenient(content)
	if err == nil {
		return sheet, nil
	}
	fail("csv fallback", err)

	return nil, fmt.Errorf("%w: %s", ErrParse, strings.Join(attempts, " | "))
}

// readWorkbook reads the first sheet of an xlsx workbook with formatted
// cell values.
func readWorkbook(content []byte) (types.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("the workbook does not contain any sheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return types.Sheet(rows), nil
}

// readCSV reads UTF-8 CSV. A byte order mark is removed.
func readCSV(content []byte) (types.Sheet, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, errInvalidUTF8
	}

	return parseCSV(bytes.NewReader(content))
}

// readEUCKR reads CSV in EUC-KR or its superset CP949, which Korean
// versions of Excel write by default.
func readEUCKR(content []byte) (types.Sheet, error) {
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), korean.EUCKR.NewDecoder()))
	if err != nil {
		return nil, err
	}

	return parseCSV(bytes.NewReader(decoded))
}

func readCSVLenient(content []byte) (types.Sheet, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	return parseCSV(strings.NewReader(strings.ToValidUTF8(string(content), "")))
}

func parseCSV(r io.Reader) (types.Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.New("the file is empty")
	}

	return types.Sheet(records), nil
}
