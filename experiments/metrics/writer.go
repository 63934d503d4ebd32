package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"splendor/game"
)

// SeatConfig describes the agent behind a seat name.
type SeatConfig struct {
	Name     string
	Strategy string
	Depth    int
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/<timestamp>-<runID> for one run.
func NewWriter(baseDir, runID string, start time.Time) (*Writer, error) {
	dir := filepath.Join(baseDir, start.UTC().Format("20060102T150405Z")+"-"+runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSeatConfigs(seats []SeatConfig) error {
	rows := make([][]string, 0, len(seats))
	for _, s := range seats {
		rows = append(rows, []string{s.Name, s.Strategy, strconv.Itoa(s.Depth)})
	}
	return w.writeCSV("seat_configs.csv", []string{"name", "strategy", "depth"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.FormatUint(r.Seed, 10),
			strings.Join(r.Seats, ";"),
			r.WinnerSeat(),
			strconv.FormatBool(r.Halted),
			strconv.Itoa(r.Turns),
			joinInts(r.Points),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	header := []string{"id", "seed", "seats", "winner", "halted", "turns", "points", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		action := ""
		if r.Found {
			action = r.Action.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Turn),
			strconv.Itoa(r.Player),
			r.Seat,
			action,
			r.Strategy,
			strconv.Itoa(r.Depth),
			r.Duration.String(),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Cutoffs, 10),
		})
	}
	header := []string{"game", "turn", "player", "seat", "action", "strategy", "depth", "duration", "nodes", "cutoffs"}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteGameLog stores game-<id>.log: a points table per player followed by
// the winner's actions as a JSON array.
func (w *Writer) WriteGameLog(record GameRecord, winner []game.Action) error {
	path := filepath.Join(w.baseDir, fmt.Sprintf("game-%d.log", record.ID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game log: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	rows := [][]string{{"player", "seat", "points"}}
	for p, points := range record.Points {
		rows = append(rows, []string{strconv.Itoa(p), record.Seats[p], strconv.Itoa(points)})
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write game log points: %w", err)
	}

	if _, err := fmt.Fprintf(f, "\nwinner: %s\n", record.WinnerSeat()); err != nil {
		return fmt.Errorf("failed to write game log winner: %w", err)
	}
	if winner == nil {
		winner = []game.Action{}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(winner); err != nil {
		return fmt.Errorf("failed to write winner actions: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
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

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}
