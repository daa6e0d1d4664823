package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

const (
	stateColumn      = "State"
	populationColumn = "Population_Lakhs"

	// Data rows start after the header row.
	firstDataLine = 2

	csvFilePerm = 0o644
)

// Sentinel errors for table loading.
var (
	// ErrSchema indicates the CSV header does not match the fixed schema.
	ErrSchema = errors.New("crime table schema mismatch")

	// ErrMalformedRow indicates a row failed type conversion, carries a
	// negative count, a non-positive population, or a duplicate state name.
	ErrMalformedRow = errors.New("malformed crime table row")

	// ErrEmptyTable indicates an operation that requires at least one
	// record was given none.
	ErrEmptyTable = errors.New("crime table has no records")
)

// Header returns the canonical CSV header row.
func Header() []string {
	header := make([]string, 0, len(Categories())+2)
	header = append(header, stateColumn)

	for _, c := range Categories() {
		header = append(header, string(c))
	}

	return append(header, populationColumn)
}

// Load reads the crime table from path. A missing file is not an error:
// the deterministic sample table is synthesized, persisted to path for
// subsequent runs, and returned. Schema and row errors are fatal for the
// whole load; no partial table is ever returned.
func Load(path string) (Table, error) {
	table, err := Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		sample := SampleTable()

		saveErr := Save(sample, path)
		if saveErr != nil {
			return nil, fmt.Errorf("persist sample table: %w", saveErr)
		}

		return sample, nil
	}

	return table, err
}

// Read reads the crime table from path without the sample-data fallback.
// A missing file surfaces as fs.ErrNotExist.
func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crime table: %w", err)
	}

	defer f.Close()

	return Parse(f)
}

// Parse reads a crime table in CSV form. The header must match Header()
// exactly; every row must convert cleanly with a positive population.
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrSchema, err)
	}

	headerErr := validateHeader(header)
	if headerErr != nil {
		return nil, headerErr
	}

	var table Table

	seen := make(map[string]bool)

	for line := firstDataLine; ; line++ {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, readErr)
		}

		rec, recErr := parseRow(row, line)
		if recErr != nil {
			return nil, recErr
		}

		if seen[rec.Name] {
			return nil, fmt.Errorf("%w: line %d: duplicate state %q", ErrMalformedRow, line, rec.Name)
		}

		seen[rec.Name] = true
		table = append(table, rec)
	}

	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	return table, nil
}

func validateHeader(header []string) error {
	want := Header()
	if len(header) != len(want) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrSchema, len(header), len(want))
	}

	for i, col := range want {
		if header[i] != col {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchema, i+1, header[i], col)
		}
	}

	return nil
}

func parseRow(row []string, line int) (StateRecord, error) {
	rec := StateRecord{
		Name:   row[0],
		Counts: make(map[Category]int, len(Categories())),
	}

	if rec.Name == "" {
		return StateRecord{}, fmt.Errorf("%w: line %d: empty state name", ErrMalformedRow, line)
	}

	for i, c := range Categories() {
		count, err := strconv.Atoi(row[i+1])
		if err != nil {
			return StateRecord{}, fmt.Errorf("%w: line %d: %s count %q is not an integer", ErrMalformedRow, line, c, row[i+1])
		}

		if count < 0 {
			return StateRecord{}, fmt.Errorf("%w: line %d: %s count is negative", ErrMalformedRow, line, c)
		}

		rec.Counts[c] = count
	}

	popField := row[len(row)-1]

	pop, err := strconv.ParseFloat(popField, 64)
	if err != nil {
		return StateRecord{}, fmt.Errorf("%w: line %d: population %q is not a number", ErrMalformedRow, line, popField)
	}

	if pop <= 0 {
		return StateRecord{}, fmt.Errorf("%w: line %d: population must be positive, got %v", ErrMalformedRow, line, pop)
	}

	rec.PopulationLakhs = pop

	return rec, nil
}

// Save writes the table as CSV to path, overwriting any existing file.
func Save(table Table, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, csvFilePerm)
	if err != nil {
		return fmt.Errorf("create crime table: %w", err)
	}

	writeErr := Write(f, table)

	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}

	return closeErr
}

// Write writes the table as CSV, header first, records in table order.
func Write(w io.Writer, table Table) error {
	writer := csv.NewWriter(w)

	err := writer.Write(Header())
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range table {
		row := make([]string, 0, len(Categories())+2)
		row = append(row, rec.Name)

		for _, c := range Categories() {
			row = append(row, strconv.Itoa(rec.Counts[c]))
		}

		row = append(row, strconv.FormatFloat(rec.PopulationLakhs, 'f', -1, 64))

		writeErr := writer.Write(row)
		if writeErr != nil {
			return fmt.Errorf("write row %s: %w", rec.Name, writeErr)
		}
	}

	writer.Flush()

	return writer.Error()
}
