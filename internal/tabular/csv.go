// Package tabular reads and writes the training log as CSV with the fixed
// column order date, day, exercise, setNumber, weight, reps, rpe, note.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
)

// Columns is the fixed column order.
var Columns = []string{"date", "day", "exercise", "setNumber", "weight", "reps", "rpe", "note"}

const (
	colDate = iota
	colDay
	colExercise
	colSetNumber
	colWeight
	colReps
	colRPE
	colNote
)

// headerAliases maps older header spellings onto the canonical columns.
var headerAliases = map[string]string{
	"tag": "day",
	"set": "setnumber",
}

// RowError describes a row that could not be turned into a record.
// Row counts CSV records from 1, including the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Result is the outcome of ReadLog. Rows that could not be read are listed
// in Skipped instead of failing the whole read.
type Result struct {
	Records []domain.SetRecord
	// Rows holds the source row of each record, parallel to Records.
	Rows    []int
	Skipped []*RowError
}

// ReadLog parses a CSV log. A header row is optional and recognized by a
// date column; when present, columns are located by name so reordered or
// older exports still load. Short rows and empty optional fields take their
// defaults: set number 0 (assigned by the caller), weight 0, reps 0, rpe
// unrated, empty note.
func ReadLog(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	res := &Result{}
	layout := defaultLayout()
	n := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		n++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.Skipped = append(res.Skipped, &RowError{Row: n, Err: perr.Err})
				continue
			}
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if n == 1 && isHeader(row) {
			layout = headerLayout(row)
			continue
		}
		if isBlank(row) {
			continue
		}
		rec, err := parseRow(layout.project(row))
		if err != nil {
			res.Skipped = append(res.Skipped, &RowError{Row: n, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
		res.Rows = append(res.Rows, n)
	}
	return res, nil
}

// isHeader reports whether row names a date column, in any position.
func isHeader(row []string) bool {
	for _, h := range row {
		if NormalizeHeader(h) == Columns[colDate] {
			return true
		}
	}
	return false
}

// layout maps each canonical column to its position in the input, or -1.
type layout []int

func defaultLayout() layout {
	l := make(layout, len(Columns))
	for i := range l {
		l[i] = i
	}
	return l
}

func headerLayout(header []string) layout {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[NormalizeHeader(h)] = i
	}
	l := make(layout, len(Columns))
	for i, c := range Columns {
		if p, ok := pos[strings.ToLower(c)]; ok {
			l[i] = p
		} else {
			l[i] = -1
		}
	}
	return l
}

// project reorders row into canonical column order.
func (l layout) project(row []string) []string {
	out := make([]string, len(l))
	for i, p := range l {
		if p >= 0 && p < len(row) {
			out[i] = row[p]
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseRow(row []string) (domain.SetRecord, error) {
	var rec domain.SetRecord
	var err error

	if rec.Date, err = domain.ParseDate(cell(row, colDate)); err != nil {
		return rec, err
	}
	if rec.Day, err = domain.ParseDay(cell(row, colDay)); err != nil {
		return rec, err
	}
	if rec.Exercise = cell(row, colExercise); rec.Exercise == "" {
		return rec, errors.New("exercise is required")
	}

	if v := cell(row, colSetNumber); v != "" {
		if rec.SetNumber, err = parseInt(v); err != nil {
			return rec, fmt.Errorf("setNumber: %w", err)
		}
	}
	if v := cell(row, colWeight); v != "" {
		if rec.Weight, err = decimal.NewFromString(v); err != nil {
			return rec, fmt.Errorf("weight: invalid number %q", v)
		}
	}
	if v := cell(row, colReps); v != "" {
		if rec.Reps, err = parseInt(v); err != nil {
			return rec, fmt.Errorf("reps: %w", err)
		}
	}
	if v := cell(row, colRPE); v != "" {
		if rec.RPE, err = strconv.ParseFloat(v, 64); err != nil {
			return rec, fmt.Errorf("rpe: invalid number %q", v)
		}
	}
	rec.Note = cell(row, colNote)
	return rec, nil
}

// parseInt also accepts integral floats such as "3.0", which spreadsheet
// exports produce for integer columns.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// WriteLog writes a header row followed by one row per record.
func WriteLog(w io.Writer, records []domain.SetRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range records {
		if err := cw.Write(FormatRow(&records[i])); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatRow renders a record in column order.
func FormatRow(r *domain.SetRecord) []string {
	rpe := ""
	if r.RPE > 0 {
		rpe = strconv.FormatFloat(r.RPE, 'f', -1, 64)
	}
	return []string{
		r.DateString(),
		string(r.Day),
		r.Exercise,
		strconv.Itoa(r.SetNumber),
		r.Weight.String(),
		strconv.Itoa(r.Reps),
		rpe,
		r.Note,
	}
}

// NormalizeHeader maps a header cell to its canonical lower-case column name.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}
