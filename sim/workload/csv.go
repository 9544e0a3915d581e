package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// csvHeader is the column order of process CSV files.
var csvHeader = []string{"id", "burst", "arrival"}

// LoadCSVFile reads a process CSV file. See LoadCSV.
func LoadCSVFile(path string) ([]sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV reads processes from rows of "id,burst,arrival". Blank lines and
// lines starting with '#' are skipped, as is a leading header row whose first
// column is "id". Non-integer fields are reported as *sim.ValidationError.
func LoadCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []sim.Process
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "id") {
				continue
			}
		}
		idx := len(out)
		if len(record) != len(csvHeader) {
			return nil, &sim.ValidationError{Index: idx, Field: "row", Reason: fmt.Sprintf("has %d fields, want 3 (id,burst,arrival)", len(record))}
		}
		burst, err := parseField(idx, "burst", record[1])
		if err != nil {
			return nil, err
		}
		arrival, err := parseField(idx, "arrival", record[2])
		if err != nil {
			return nil, err
		}
		out = append(out, sim.Process{ID: strings.TrimSpace(record[0]), Arrival: arrival, Burst: burst})
	}
	return out, nil
}

// WriteCSV writes procs as "id,burst,arrival" rows with a header.
func WriteCSV(w io.Writer, procs []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	for _, p := range procs {
		row := []string{p.ID, strconv.FormatInt(p.Burst, 10), strconv.FormatInt(p.Arrival, 10)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseField(idx int, field, raw string) (int64, error) {
	v := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &sim.ValidationError{Index: idx, Field: field, Reason: fmt.Sprintf("is not a number: %q", v)}
	}
	return n, nil
}
