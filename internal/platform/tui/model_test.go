package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// memStore keeps solves in memory.
type memStore struct {
	solves []storage.Solve
}

func (s *memStore) SaveSolve(solve storage.Solve) (int64, error) {
	solve.ID = int64(len(s.solves) + 1)
	s.solves = append(s.solves, solve)
	return solve.ID, nil
}

func (s *memStore) Best(gameID, levelID string) (*storage.Solve, error) {
	var best *storage.Solve
	for i := range s.solves {
		sv := &s.solves[i]
		if sv.GameID != gameID || sv.LevelID != levelID {
			continue
		}
		if best == nil || sv.Moves < best.Moves || (sv.Moves == best.Moves && sv.Pushes < best.Pushes) {
			best = sv
		}
	}
	return best, nil
}

func (s *memStore) BestSolves(gameID, levelID string, limit int) ([]storage.Solve, error) {
	var out []storage.Solve
	for _, sv := range s.solves {
		if sv.GameID == gameID && sv.LevelID == levelID {
			out = append(out, sv)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func testPack() *sokoban.Pack {
	return sokoban.NewPack("test", "Test",
		sokoban.NewLevel("one", "One", []string{"#####", "#@$.#", "#####"}),
		sokoban.NewLevel("two", "Two", []string{"#######", "#@ $ .#", "#######"}),
	)
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

func newTestModel(store SolveStore) GameModel {
	game := sokoban.NewWithPack(testPack(), sokoban.DefaultTheme())
	m := NewGameModel(game, testConfig, GameOptions{Records: store, Player: "alice"})
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func TestGameModelRecordsSolve(t *testing.T) {
	store := &memStore{}
	m := newTestModel(store)

	m, _ = send(t, m, runes("d"))
	if !strings.Contains(m.Status(), "first solve") {
		t.Errorf("status = %q, want first solve", m.Status())
	}
	if len(store.solves) != 1 {
		t.Fatalf("saved %d solves, want 1", len(store.solves))
	}
	got := store.solves[0]
	if got.GameID != sokoban.GameID || got.LevelID != "one" || got.Player != "alice" {
		t.Errorf("solve = %+v", got)
	}
	if got.Moves != 1 || got.Pushes != 1 {
		t.Errorf("solve moves/pushes = %d/%d, want 1/1", got.Moves, got.Pushes)
	}

	// Restart clears the status and replaying records a second solve
	m, _ = send(t, m, runes("r"))
	if m.Status() != "" {
		t.Errorf("status after restart = %q, want empty", m.Status())
	}
	m, _ = send(t, m, runes("d"))
	if !strings.Contains(m.Status(), "best 1/1") {
		t.Errorf("status = %q, want best 1/1", m.Status())
	}
	if len(store.solves) != 2 {
		t.Errorf("saved %d solves, want 2", len(store.solves))
	}
}

func TestGameModelWithoutRecords(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, runes("d"))
	if m.Status() != "Solved in 1 moves, 1 pushes" {
		t.Errorf("status = %q", m.Status())
	}
	if !strings.Contains(m.View(), "Solved in 1 moves") {
		t.Error("view should show the status line")
	}
}

func TestRecordsFromNil(t *testing.T) {
	if RecordsFrom(nil) != nil {
		t.Error("RecordsFrom(nil) should be a nil interface")
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := newTestModel(nil)

	back, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit on back")
	}

	standalone := newTestModel(nil)
	standalone.standalone = true
	_, cmd = send(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone model should quit on back")
	}

	quit, cmd := send(t, m, runes("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelHelpToggle(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, runes("?"))
	if !strings.Contains(m.View(), "restart level") {
		t.Error("full help should list the restart binding")
	}

	m, _ = send(t, m, runes("?"))
	if strings.Contains(m.View(), "restart level") {
		t.Error("help should be hidden again")
	}
}

func TestGameModelResizeKeepsProgress(t *testing.T) {
	m := newTestModel(nil)
	m, _ = send(t, m, runes("n"))
	m, _ = send(t, m, runes("d"))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if w, h := m.Screen().Width(), m.Screen().Height(); w != 100 || h != 30 {
		t.Errorf("screen = %dx%d, want 100x30", w, h)
	}

	snap := m.game.(*sokoban.Game).Snapshot()
	if snap.LevelID != "two" || snap.Moves != 1 {
		t.Errorf("snapshot after resize = %+v, want level two with 1 move", snap)
	}
}

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "efgh")

	out := NewPalette(nil).Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "efgh" {
		t.Errorf("line 1 = %q, want efgh", lines[1])
	}
}
