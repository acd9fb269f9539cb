package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
)

var requiredJobColumns = []string{"title", "description", "location", "ctc"}

// ParseJobsCSV reads a job upload. The header must name every required
// column; extra columns are ignored and ctc becomes the salary package.
func ParseJobsCSV(filename string, r io.Reader) ([]dto.CreateJobRequest, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return nil, apperr.BadRequest("Only CSV files are allowed")
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.BadRequest("Error processing CSV: file is empty")
		}
		return nil, apperr.BadRequest("Error processing CSV: " + err.Error())
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	var missing []string
	for _, col := range requiredJobColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.BadRequest(fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var jobs []dto.CreateJobRequest
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.BadRequest("Error processing CSV: " + err.Error())
		}
		jobs = append(jobs, dto.CreateJobRequest{
			Title:       cell(row, "title"),
			Description: cell(row, "description"),
			Location:    cell(row, "location"),
			CTC:         cell(row, "ctc"),
		})
	}
	return jobs, nil
}
