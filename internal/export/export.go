// Package export writes flat row sets as downloadable CSV or pretty-printed
// JSON attachments.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidFormat reports whether f is a supported export format.
func ValidFormat(f string) bool {
	return f == FormatCSV || f == FormatJSON
}

// WriteCSV streams header plus rows as a CSV attachment.
func WriteCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON streams records as an indented JSON attachment.
func WriteJSON(w http.ResponseWriter, filename string, records any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".json"))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
