package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"bookstore-backoffice/internal/domains/book/model"
	"bookstore-backoffice/internal/domains/book/repository"
	"bookstore-backoffice/pkg/logger"
)

// importColumns is the expected header row, in order.
var importColumns = []string{"isbn", "title", "author", "description", "price", "stock", "language", "category"}

type importService struct {
	repo repository.RepositoryInterface
}

func NewImportService(repo repository.RepositoryInterface) ImportServiceInterface {
	return &importService{repo: repo}
}

// ImportBooks reads an .xlsx sheet row by row. Bad rows are reported and
// skipped; good rows are inserted independently.
func (s *importService) ImportBooks(ctx context.Context, file *multipart.FileHeader) (*model.ImportReport, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("not a valid spreadsheet: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	report := &model.ImportReport{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		req, err := parseImportRow(row)
		if err == nil {
			err = req.Validate()
		}
		if err == nil {
			err = s.repo.Create(ctx, req.ToBook())
		}

		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, model.ImportRowError{
				Row:     rowNum,
				Message: err.Error(),
			})
			continue
		}
		report.Imported++
	}

	logger.Info("bulk import finished", map[string]interface{}{
		"file":     file.Filename,
		"imported": report.Imported,
		"failed":   report.Failed,
	})
	return report, nil
}

func checkHeader(header []string) error {
	if len(header) < len(importColumns) {
		return fmt.Errorf("header must have columns: %s", strings.Join(importColumns, ", "))
	}
	for i, want := range importColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("header column %d must be %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseImportRow(row []string) (*model.CreateBookRequest, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	price, err := decimal.NewFromString(cell(4))
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", cell(4))
	}

	stock := 0
	if raw := cell(5); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock %q", raw)
		}
	}

	req := &model.CreateBookRequest{
		Title:       cell(1),
		Author:      cell(2),
		Description: cell(3),
		Price:       price,
		Stock:       stock,
		Language:    cell(6),
		Category:    cell(7),
	}
	if isbn := cell(0); isbn != "" {
		req.ISBN = &isbn
	}
	return req, nil
}
