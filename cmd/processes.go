// CSV process source. The engine assumes clean descriptors, so every
// validation rule lives here: rows are rejected with line-numbered errors
// before the simulation starts.

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sim "github.com/santiagoacosta2/Simulador-Sistemas-Operativos/sim"
)

// csvHeaders are the required columns, in any order.
var csvHeaders = []string{"ID", "Arrival", "Burst", "Memory"}

// LoadProcessesCSV reads a header-first CSV of process descriptors.
func LoadProcessesCSV(path string) ([]*sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseProcesses(f)
}

// ParseProcesses parses process descriptors from CSV content.
func ParseProcesses(r io.Reader) ([]*sim.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV is empty, expected a header row %v", csvHeaders)
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	processes := make([]*sim.Process, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) < len(csvHeaders) {
			return nil, fmt.Errorf("CSV line %d: expected %d columns, got %d", line, len(csvHeaders), len(row))
		}

		id := strings.TrimSpace(row[columns["ID"]])
		if id == "" {
			return nil, fmt.Errorf("CSV line %d: 'ID' must not be empty", line)
		}
		if seen[id] {
			return nil, fmt.Errorf("CSV line %d: duplicate process ID %q", line, id)
		}
		seen[id] = true

		arrival, err := parseField("Arrival", row[columns["Arrival"]], line)
		if err != nil {
			return nil, err
		}
		burst, err := parseField("Burst", row[columns["Burst"]], line)
		if err != nil {
			return nil, err
		}
		memory, err := parseField("Memory", row[columns["Memory"]], line)
		if err != nil {
			return nil, err
		}

		if arrival < 0 {
			return nil, fmt.Errorf("CSV line %d: 'Arrival' must be >= 0", line)
		}
		if burst <= 0 {
			return nil, fmt.Errorf("CSV line %d: 'Burst' must be > 0", line)
		}
		if memory <= 0 {
			return nil, fmt.Errorf("CSV line %d: 'Memory' must be > 0", line)
		}

		processes = append(processes, sim.NewProcess(id, arrival, burst, memory))
	}

	if len(processes) == 0 {
		return nil, fmt.Errorf("CSV contains no process rows")
	}
	return processes, nil
}

// headerIndex maps required column names to their positions.
func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range csvHeaders {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV header missing required columns: %v", missing)
	}
	return columns, nil
}

func parseField(field, value string, line int) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CSV line %d: '%s' must be an integer, got %q", line, field, value)
	}
	return n, nil
}
