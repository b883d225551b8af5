package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SolverConfig struct {
	ID         int
	Goroutines int
	SplitPly   int
}

type RunRecord struct {
	ID       string // Unique per solve
	Config   int    // SolverConfig.ID
	Board    string // Board or scenario name
	Depth    int
	Hash     uint32
	Expected uint32 // 0 when unknown
	SolveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSolverConfigs(configs []SolverConfig) error {
	header := []string{"id", "goroutines", "split_ply"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.SplitPly),
		})
	}
	return w.write("solver_configs.csv", header, rows)
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"id", "config", "board", "depth", "hash", "expected", "duration", "terminals", "stores", "retrievals", "table_size"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Config),
			record.Board,
			strconv.Itoa(record.Depth),
			strconv.FormatUint(uint64(record.Hash), 10),
			strconv.FormatUint(uint64(record.Expected), 10),
			record.Duration.String(),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Stores),
			strconv.Itoa(record.Retrievals),
			strconv.Itoa(record.TableSize),
		})
	}
	return w.write("run_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
