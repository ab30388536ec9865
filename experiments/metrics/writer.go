package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp> and writes every record file there.
func NewWriter(dir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "iterations", "exploration", "duration", "temperature"}
	return w.write("agent_configs.csv", "agent config", header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			string(config.Kind),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			config.Duration.String(),
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "self", "opponent", "seed", "starting_party", "outcome", "finished",
		"start_time", "end_time", "duration", "total_moves"}
	return w.write("game_records.csv", "game record", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.MatchUp),
			strconv.Itoa(record.Self),
			strconv.Itoa(record.Opponent),
			strconv.FormatUint(record.Seed, 10),
			record.StartingParty.String(),
			record.Outcome.String(),
			strconv.FormatBool(record.Finished),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "party", "move", "duration", "iterations", "rollouts",
		"terminal_evaluations", "tree_size"}
	return w.write("move_records.csv", "move record", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Party.String(),
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.TerminalEvaluations),
			strconv.Itoa(record.TreeSize),
		}
	})
}

func (w *Writer) write(file, kind string, header []string, n int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", kind, err)
	}
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", kind, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s file: %w", kind, err)
	}
	return nil
}
