package sokoban

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func TestScanRowMajorOrder(t *testing.T) {
	l := NewLevel("scan", "Scan", []string{
		"#####",
		"#$ $#",
		"# @ #",
		"#$  #",
		"#####",
	})

	player, boxes := Scan(l)
	if player != Pos(2, 2) {
		t.Errorf("player = %v, want (2,2)", player)
	}
	want := []Position{Pos(1, 1), Pos(3, 1), Pos(1, 3)}
	if len(boxes) != len(want) {
		t.Fatalf("got %d boxes, want %d", len(boxes), len(want))
	}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d = %v, want %v", i, boxes[i], want[i])
		}
	}
}

func TestScanPlayerMarkers(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Position
	}{
		{"none defaults to origin", []string{"#  $.#"}, Pos(0, 0)},
		{"single", []string{"# @$.#"}, Pos(2, 0)},
		{"last match wins", []string{"#@ $.#", "#  @ #"}, Pos(3, 1)},
		{"player on goal", []string{"# +$.#"}, Pos(2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, _ := Scan(NewLevel("t", "t", tt.rows))
			if player != tt.want {
				t.Errorf("player = %v, want %v", player, tt.want)
			}
		})
	}
}

func TestMovePushOntoGoalWins(t *testing.T) {
	l := NewLevel("example", "Example", []string{"#.@$."})
	s := NewState(0, l)

	next, outcome := Move(s, DirRight, l)
	if outcome != MovePushed {
		t.Fatalf("outcome = %v, want pushed", outcome)
	}
	if next.Player != Pos(3, 0) {
		t.Errorf("player = %v, want (3,0)", next.Player)
	}
	if len(next.Boxes) != 1 || next.Boxes[0] != Pos(4, 0) {
		t.Errorf("boxes = %v, want [(4,0)]", next.Boxes)
	}
	if !next.Won {
		t.Error("expected win flag after pushing the only box onto a goal")
	}

	// Original state is untouched
	if s.Player != Pos(2, 0) || s.Boxes[0] != Pos(3, 0) || s.Won {
		t.Errorf("input state was modified: %+v", s)
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		dir  Direction
	}{
		{"box against wall", []string{"#@$#"}, DirRight},
		{"walk into wall", []string{"#@ #"}, DirLeft},
		{"box against box", []string{"#@$$ #"}, DirRight},
		{"walk off the top", []string{" @ ", "   "}, DirUp},
		{"push box out of bounds", []string{"@$"}, DirRight},
		{"short row below", []string{"  @", "  "}, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLevel("t", "t", tt.rows)
			before := NewState(0, l)
			snapshot := before.Clone()

			after, outcome := Move(before, tt.dir, l)
			if outcome != MoveRejected {
				t.Fatalf("outcome = %v, want rejected", outcome)
			}
			if !after.Equal(snapshot) {
				t.Errorf("state changed on rejected move: %+v -> %+v", snapshot, after)
			}
		})
	}
}

func TestMoveWalkDoesNotTouchBoxes(t *testing.T) {
	l := NewLevel("t", "t", []string{
		"#####",
		"# @ #",
		"# $.#",
		"#####",
	})
	s := NewState(0, l)

	next, outcome := Move(s, DirRight, l)
	if outcome != MoveWalked {
		t.Fatalf("outcome = %v, want walked", outcome)
	}
	if next.Player != Pos(3, 1) {
		t.Errorf("player = %v, want (3,1)", next.Player)
	}
	if next.Boxes[0] != Pos(2, 2) {
		t.Errorf("box moved to %v", next.Boxes[0])
	}
}

// TestMoveSafety walks every reachable state of a small level and checks that
// no move ever places the player or a box on a wall or outside the grid.
func TestMoveSafety(t *testing.T) {
	l := NewLevel("safety", "Safety", []string{
		"  ####",
		"###  #",
		"#  $ #",
		"# #$.##",
		"# @ . #",
		"#######",
	})

	start := NewState(0, l)
	seen := map[string]bool{solverKey(start): true}
	queue := []State{start}

	for len(queue) > 0 && len(seen) < 5000 {
		s := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			next, outcome := Move(s, d, l)
			if outcome == MoveRejected {
				if !next.Equal(s) {
					t.Fatalf("rejected move changed state")
				}
				continue
			}
			if !l.Walkable(next.Player) {
				t.Fatalf("player on non-walkable cell %v", next.Player)
			}
			for _, b := range next.Boxes {
				if !l.Walkable(b) {
					t.Fatalf("box on non-walkable cell %v", b)
				}
			}
			if next.BoxAt(next.Player) >= 0 {
				t.Fatalf("player shares cell with a box at %v", next.Player)
			}
			if next.Won != Solved(next.Boxes, l) && outcome == MovePushed {
				t.Fatalf("win flag %v does not match boxes %v", next.Won, next.Boxes)
			}

			key := solverKey(next)
			if !seen[key] {
				seen[key] = true
				queue = append(queue, next)
			}
		}
	}
}

func TestSolved(t *testing.T) {
	l := NewLevel("t", "t", []string{"#. .#", "#* $#"})

	tests := []struct {
		name  string
		boxes []Position
		want  bool
	}{
		{"empty list", nil, true},
		{"all on goals", []Position{Pos(1, 0), Pos(3, 0)}, true},
		{"box on goal marker", []Position{Pos(1, 1)}, true},
		{"one off goal", []Position{Pos(1, 0), Pos(3, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solved(tt.boxes, l); got != tt.want {
				t.Errorf("Solved(%v) = %v, want %v", tt.boxes, got, tt.want)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	l := NewLevel("t", "t", []string{"# @ #"})
	s := NewState(0, l)

	for _, a := range []core.Action{core.ActionConfirm, core.ActionRestart, core.ActionNext, core.ActionNone} {
		next, outcome := Dispatch(s, a, l)
		if outcome != MoveRejected || !next.Equal(s) {
			t.Errorf("action %v should be ignored", a)
		}
	}

	next, outcome := Dispatch(s, core.ActionLeft, l)
	if outcome != MoveWalked || next.Player != Pos(1, 0) {
		t.Errorf("left: outcome %v player %v", outcome, next.Player)
	}

	won := s.Clone()
	won.Won = true
	next, outcome = Dispatch(won, core.ActionLeft, l)
	if outcome != MoveRejected || !next.Equal(won) {
		t.Error("input should be frozen once the level is won")
	}
}

func TestClassifyPrecedence(t *testing.T) {
	l := NewLevel("t", "t", []string{"#.  ", "  . "})
	s := State{
		Player: Pos(2, 1), // on a goal
		Boxes:  []Position{Pos(1, 0), Pos(0, 0)},
	}

	tests := []struct {
		p    Position
		want Tag
	}{
		{Pos(2, 1), TagPlayer}, // player beats goal
		{Pos(1, 0), TagBox},    // box beats goal
		{Pos(0, 0), TagBox},    // box beats wall
		{Pos(2, 0), TagEmpty},
		{Pos(9, 9), TagEmpty}, // out of bounds
	}

	for _, tt := range tests {
		if got := Classify(s, l, tt.p); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	s.Player = Pos(3, 1)
	if got := Classify(s, l, Pos(2, 1)); got != TagGoal {
		t.Errorf("empty goal classified as %v", got)
	}
}

func TestLevelBounds(t *testing.T) {
	l := NewLevel("t", "t", []string{"####", "#", "# #"})

	if l.Width() != 4 || l.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", l.Width(), l.Height())
	}
	if l.InBounds(Pos(2, 1)) {
		t.Error("(2,1) is past the end of a short row")
	}
	if !l.InBounds(Pos(2, 2)) || !l.Walkable(Pos(1, 2)) {
		t.Error("(1,2) should be open floor")
	}
	if l.Walkable(Pos(-1, 0)) || l.Walkable(Pos(0, 3)) {
		t.Error("out-of-bounds cells must not be walkable")
	}
}
