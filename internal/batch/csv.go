package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"file", "name", "email", "phone", "skills", "total_experience", "ats_score", "error",
}

// WriteCSV renders rows as CSV with a fixed header line.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		score := ""
		if row.Err == "" {
			score = strconv.Itoa(row.ATSScore)
		}
		record := []string{
			row.FileName,
			row.Name,
			row.Email,
			row.Phone,
			row.Skills,
			row.TotalExperience,
			score,
			row.Err,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
