// Package csvio reads and writes clock segments as CSV with the columns
// label, start and end (mm:ss), plus an optional color column.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/ayoisaiah/hourclock/internal/apperr"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

const (
	colLabel = "label"
	colStart = "start"
	colEnd   = "end"
	colColor = "color"
)

var errMissingColumns = &apperr.Error{
	Message: "csv header must contain the columns label, start and end (got %s)",
}

// ErrMissingColumns is returned when the header row lacks a required column.
var ErrMissingColumns = errMissingColumns

// Skipped describes a data row that was not imported.
type Skipped struct {
	Reason string `json:"reason"`
	Line   int    `json:"line"`
}

// Result holds the outcome of an import.
type Result struct {
	Drafts  []segment.Draft
	Skipped []Skipped
}

// Import reads segments from r. The header is matched case-insensitively and
// columns may appear in any order. Rows missing a label, start or end value
// are skipped, as are rows whose times cannot be parsed or whose duration is
// zero. Rows without a valid color get a random one.
func Import(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errMissingColumns.Fmt("an empty file")
		}

		return nil, err
	}

	cols := indexColumns(header)

	for _, name := range []string{colLabel, colStart, colEnd} {
		if _, ok := cols[name]; !ok {
			return nil, errMissingColumns.Fmt(strings.Join(header, ","))
		}
	}

	res := &Result{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)

		in := segment.Input{
			Label: field(record, cols, colLabel),
			Start: field(record, cols, colStart),
			End:   field(record, cols, colEnd),
			Color: field(record, cols, colColor),
		}

		if in.Label == "" || in.Start == "" || in.End == "" {
			res.Skipped = append(res.Skipped, Skipped{Line: line, Reason: "missing field"})
			continue
		}

		if in.Color != "" {
			if _, err := segment.NormalizeColor(in.Color); err != nil {
				in.Color = ""
			}
		}

		d, err := segment.ParseDraft(in)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Line: line, Reason: err.Error()})
			continue
		}

		res.Drafts = append(res.Drafts, d)
	}

	return res, nil
}

// Export writes segs to w in list order. The end column is wrapped into the
// hour so that exported files import back to the same durations. A segment
// filling the whole hour keeps its unwrapped end ("60:00") since a wrapped
// one would read back as zero length.
func Export(w io.Writer, segs []models.Segment) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{colLabel, colStart, colEnd, colColor})
	if err != nil {
		return err
	}

	for _, s := range segs {
		err = writer.Write([]string{
			s.Label,
			timeutil.SecondsToTime(s.StartSeconds),
			timeutil.SecondsToTime(timeutil.EndOffset(s.StartSeconds, s.Duration)),
			s.Color,
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}
