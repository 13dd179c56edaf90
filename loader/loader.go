// Package loader reads process descriptors from scheduling files.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jar0582/procsched/scheduler"
)

var (
	ErrInvalidArgs   = errors.New("invalid args")
	ErrMalformed     = errors.New("malformed process line")
	ErrDuplicateID   = errors.New("duplicate process id")
	ErrUnknownFormat = errors.New("unknown file format")
)

// Format selects the layout of a scheduling file.
type Format string

const (
	// FormatText is a header line followed by "pid arrival burst priority" lines.
	FormatText Format = "text"
	// FormatCSV is header-less "pid,burst,arrival[,priority]" rows.
	FormatCSV Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Open opens a scheduling file and returns it with a func that closes it.
func Open(path string) (*os.File, func() error, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	closeFn := func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: error closing scheduling file", err)
		}
		return nil
	}

	return f, closeFn, nil
}

// Load parses every process in r. Process ids must be unique.
func Load(r io.Reader, format Format) ([]scheduler.Process, error) {
	var (
		processes []scheduler.Process
		err       error
	)
	switch format {
	case FormatText:
		processes, err = loadText(r)
	case FormatCSV:
		processes, err = loadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ProcessID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ProcessID)
		}
		seen[p.ProcessID] = struct{}{}
	}

	return processes, nil
}

func loadText(r io.Reader) ([]scheduler.Process, error) {
	processes := make([]scheduler.Process, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: want 4 fields, got %d", ErrMalformed, line, len(fields))
		}

		values, err := parseFields(line, fields)
		if err != nil {
			return nil, err
		}
		p := scheduler.Process{
			ProcessID:     values[0],
			ArrivalTime:   values[1],
			BurstDuration: values[2],
			Priority:      values[3],
		}
		if err := validate(line, p); err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading scheduling file", err)
	}

	return processes, nil
}

func loadCSV(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]scheduler.Process, len(rows))
	for i := range rows {
		line := i + 1
		if n := len(rows[i]); n != 3 && n != 4 {
			return nil, fmt.Errorf("%w: line %d: want 3 or 4 fields, got %d", ErrMalformed, line, n)
		}
		values, err := parseFields(line, rows[i])
		if err != nil {
			return nil, err
		}
		processes[i].ProcessID = values[0]
		processes[i].BurstDuration = values[1]
		processes[i].ArrivalTime = values[2]
		if len(values) == 4 {
			processes[i].Priority = values[3]
		}
		if err := validate(line, processes[i]); err != nil {
			return nil, err
		}
	}

	return processes, nil
}

func parseFields(line int, fields []string) ([]int64, error) {
	values := make([]int64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: field %d %q is not an integer", ErrMalformed, line, i+1, s)
		}
		values[i] = v
	}
	return values, nil
}

func validate(line int, p scheduler.Process) error {
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: line %d: negative arrival time %d", ErrMalformed, line, p.ArrivalTime)
	}
	if p.BurstDuration < 0 {
		return fmt.Errorf("%w: line %d: negative burst time %d", ErrMalformed, line, p.BurstDuration)
	}
	return nil
}
