package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/boychukmk/library/internal/domains/book/model"
	"github.com/boychukmk/library/pkg/logger"
)

var csvColumns = []string{"title", "genre", "published_year", "author"}

// importRow pairs a parsed record with its 1-based position in the file,
// so error reports stay aligned after skipped rows.
type importRow struct {
	row int
	rec model.ImportRecord
}

type importService struct {
	books BookService
}

func NewImportService(books BookService) ImportService {
	return &importService{books: books}
}

// Import parses the file by extension, then pushes every record through the
// regular create path. Each record commits in its own transaction, so a bad
// row never rolls back its neighbours.
func (s *importService) Import(ctx context.Context, filename string, r io.Reader) (*model.ImportResult, error) {
	var (
		rows    []importRow
		rowErrs []model.ImportRowError
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		rows, err = parseJSON(r)
	case ".csv":
		rows, rowErrs, err = parseCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	result := &model.ImportResult{
		TotalRows: len(rows) + len(rowErrs),
		Errors:    rowErrs,
	}

	for _, row := range rows {
		if _, err := s.books.Create(ctx, row.rec.ToCreateRequest()); err != nil {
			result.Errors = append(result.Errors, model.ImportRowError{
				Row:    row.row,
				Reason: err.Error(),
			})
			continue
		}
		result.SuccessRows++
	}

	result.FailedRows = result.TotalRows - result.SuccessRows
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Row < result.Errors[j].Row
	})

	logger.Info("bulk import finished", map[string]interface{}{
		"file":    filename,
		"total":   result.TotalRows,
		"success": result.SuccessRows,
		"failed":  result.FailedRows,
	})

	return result, nil
}

func parseJSON(r io.Reader) ([]importRow, error) {
	var records []model.ImportRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedPayload, err)
	}

	rows := make([]importRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, importRow{row: i + 1, rec: rec})
	}
	return rows, nil
}

// parseCSV expects a header row naming at least the four book columns, in
// any order. A row with a non-numeric year is reported and skipped; a file
// that cannot be read as CSV at all fails whole.
func parseCSV(r io.Reader) ([]importRow, []model.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", model.ErrMalformedPayload, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("%w: missing column %q", model.ErrMalformedPayload, col)
		}
	}

	var (
		rows    []importRow
		rowErrs []model.ImportRowError
	)
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", model.ErrMalformedPayload, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[index["published_year"]]))
		if err != nil {
			rowErrs = append(rowErrs, model.ImportRowError{
				Row:    rowNum,
				Reason: "published_year is not a number",
			})
			continue
		}

		rows = append(rows, importRow{
			row: rowNum,
			rec: model.ImportRecord{
				Title:         record[index["title"]],
				Genre:         record[index["genre"]],
				PublishedYear: year,
				Author:        record[index["author"]],
			},
		})
	}

	return rows, rowErrs, nil
}
