package game

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/item"
	"terrasky/internal/sim"
)

func TestRunLogSummarizesSimulation(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.Sim()
	s.Economy.Unlock(economy.Capacity)
	if r := s.Build(building.Furnace, s.Player.Pos, s.Player.Inventory); r != sim.BuildOK {
		t.Fatalf("build = %v", r)
	}
	s.Step()

	rl := newRunLog(s, g.Seed())
	if rl.Seed != 42 || rl.Ticks != 1 {
		t.Fatalf("seed/ticks = %d/%d", rl.Seed, rl.Ticks)
	}
	if rl.Buildings["furnace"] != 1 {
		t.Errorf("buildings = %v", rl.Buildings)
	}
	if len(rl.Upgrades) != 1 || rl.Upgrades[0] != "capacity" {
		t.Errorf("upgrades = %v", rl.Upgrades)
	}
	if rl.Items["wood"] != 5 || rl.Items["stone"] != 5 {
		t.Errorf("items = %v", rl.Items)
	}
}

func TestRunLogCountsHeldStack(t *testing.T) {
	g, _ := newTestGame(t)
	s := g.Sim()
	want := s.Player.Inventory.Tally()

	for i := 0; i < s.Player.Inventory.Len(); i++ {
		if s.Player.Inventory.Slot(i).Kind() == item.Wood {
			s.Hand.Click(s.Player.Inventory.Slot(i))
			break
		}
	}
	if !s.Hand.Holding() {
		t.Fatal("expected wood in hand")
	}

	rl := newRunLog(s, g.Seed())
	for k, n := range want {
		if rl.Items[k.String()] != n {
			t.Errorf("items[%s] = %d, want %d", k, rl.Items[k.String()], n)
		}
	}
}

func TestSaveRunLogAppendsLines(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	saveRunLog(RunLog{Seed: 1, Science: 3}, logger)
	saveRunLog(RunLog{Seed: 2}, logger)

	f, err := os.Open(filepath.Join(dir, "terrasky", "runs.jsonl"))
	if err != nil {
		t.Fatalf("open run log: %v", err)
	}
	defer f.Close()

	var seeds []int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rl RunLog
		if err := json.Unmarshal(sc.Bytes(), &rl); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		seeds = append(seeds, rl.Seed)
	}
	if len(seeds) != 2 || seeds[0] != 1 || seeds[1] != 2 {
		t.Fatalf("seeds = %v", seeds)
	}
}
