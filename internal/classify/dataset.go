package classify

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadCSV reads labeled samples from a CSV file. The header row names the
// columns; a text column ("question" or "text") and a label column
// ("difficulty" or "label") are required. Rows with unparseable labels or
// empty text are skipped.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	textCol, labelCol, err := datasetColumns(header)
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if s, ok := sampleFromRow(row, textCol, labelCol); ok {
			samples = append(samples, s)
		}
	}
	return samples, nil
}

// LoadXLSX reads labeled samples from the first sheet of an Excel workbook,
// using the same column naming rules as LoadCSV.
func LoadXLSX(path string) ([]Sample, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	textCol, labelCol, err := datasetColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, row := range rows[1:] {
		if s, ok := sampleFromRow(row, textCol, labelCol); ok {
			samples = append(samples, s)
		}
	}
	return samples, nil
}

// LoadDataset dispatches on file extension: .xlsx via excelize, anything
// else as CSV.
func LoadDataset(path string) ([]Sample, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path)
}

func datasetColumns(header []string) (textCol, labelCol int, err error) {
	textCol, labelCol = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "question", "text":
			if textCol < 0 {
				textCol = i
			}
		case "difficulty", "label":
			if labelCol < 0 {
				labelCol = i
			}
		}
	}
	if textCol < 0 || labelCol < 0 {
		return 0, 0, fmt.Errorf("dataset needs a question/text and a difficulty/label column, got %v", header)
	}
	return textCol, labelCol, nil
}

func sampleFromRow(row []string, textCol, labelCol int) (Sample, bool) {
	if textCol >= len(row) || labelCol >= len(row) {
		return Sample{}, false
	}
	text := strings.TrimSpace(row[textCol])
	if text == "" {
		return Sample{}, false
	}
	label, err := ParseDifficulty(strings.ToLower(strings.TrimSpace(row[labelCol])))
	if err != nil {
		return Sample{}, false
	}
	return Sample{Text: text, Label: label}, true
}

// Split partitions samples into train and test sets at the given ratio
// (e.g. 0.8 keeps 80% for training). Order is preserved; callers wanting a
// shuffled split shuffle first.
func Split(samples []Sample, trainRatio float64) (train, test []Sample) {
	if trainRatio <= 0 || trainRatio >= 1 {
		return samples, nil
	}
	cut := int(float64(len(samples)) * trainRatio)
	return samples[:cut], samples[cut:]
}
