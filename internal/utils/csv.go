package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CSVDownload flattens rows into a CSV attachment response. Pages call this
// to export the currently loaded, filtered list.
func CSVDownload(c echo.Context, filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportFilename builds a dated export file name, e.g. users-2026-08-28.csv
func ExportFilename(resource string) string {
	return fmt.Sprintf("%s-%s.csv", resource, time.Now().Format("2006-01-02"))
}

// FormatTime renders a timestamp for CSV cells; zero times render empty
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
