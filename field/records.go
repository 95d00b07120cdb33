package field

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readRecords reads every record in the given file. Records must have
// between minCols and maxCols whitespace-separated numeric fields; a
// negative maxCols removes the upper bound. Blank lines and lines starting
// with '#' are skipped. The first bad line aborts the read.
func readRecords(path string, minCols, maxCols int) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	lines := strings.Split(string(data), "\n")
	records := make([][]float64, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rec, reason := parseRecord(trimmed, minCols, maxCols)
		if reason != "" {
			return nil, &ParseError{
				Path: path, Line: i + 1, Text: line, Reason: reason,
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRecord splits a single line into floats. A non-empty reason is
// returned for malformed lines.
func parseRecord(line string, minCols, maxCols int) (rec []float64, reason string) {
	tokens := strings.Fields(line)
	if len(tokens) < minCols || (maxCols >= 0 && len(tokens) > maxCols) {
		return nil, columnReason(len(tokens), minCols, maxCols)
	}

	rec = make([]float64, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Sprintf("column %d is not numeric: '%s'", i, tok)
		}
		rec[i] = x
	}
	return rec, ""
}

func columnReason(n, minCols, maxCols int) string {
	switch {
	case minCols == maxCols:
		return fmt.Sprintf("expected %d columns, found %d", minCols, n)
	case maxCols < 0:
		return fmt.Sprintf("expected at least %d columns, found %d", minCols, n)
	}
	return fmt.Sprintf(
		"expected %d to %d columns, found %d", minCols, maxCols, n,
	)
}
