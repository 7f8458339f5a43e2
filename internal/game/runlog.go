package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"terrasky/internal/economy"
	"terrasky/internal/sim"
)

// RunLog records the outcome of one play session.
type RunLog struct {
	Timestamp time.Time      `json:"timestamp"`
	Seed      int64          `json:"seed"`
	Ticks     uint64         `json:"ticks"`
	Science   int            `json:"science"`
	Energy    int            `json:"energy"`
	Buildings map[string]int `json:"buildings"`
	Upgrades  []string       `json:"upgrades"`
	Items     map[string]int `json:"items"`
}

// newRunLog summarizes the current state of s.
func newRunLog(s *sim.Simulation, seed int64) RunLog {
	rl := RunLog{
		Timestamp: time.Now().UTC(),
		Seed:      seed,
		Ticks:     s.Tick,
		Science:   s.Economy.Science,
		Energy:    int(s.Economy.GlobalEnergy),
		Buildings: make(map[string]int),
		Upgrades:  []string{},
		Items:     make(map[string]int),
	}
	for _, b := range s.Buildings() {
		rl.Buildings[b.Kind.String()]++
	}
	for _, u := range economy.Upgrades {
		if s.Economy.Has(u) {
			rl.Upgrades = append(rl.Upgrades, u.String())
		}
	}
	for k, n := range s.Player.Inventory.Tally() {
		rl.Items[k.String()] = n
	}
	if st, ok := s.Hand.Held(); ok {
		rl.Items[st.Kind.String()] += st.Count
	}
	return rl
}

// saveRunLog appends rl as one JSON line to runs.jsonl in the data dir.
// Failures are logged and otherwise ignored.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write failed", "error", err)
	}
}

func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "terrasky"), nil
}
