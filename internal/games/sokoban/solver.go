package sokoban

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultSolverLimit bounds the number of positions the solver explores.
const DefaultSolverLimit = 2_000_000

// SolveResult is the outcome of a breadth-first search over a level.
type SolveResult struct {
	Solvable bool
	Moves    int         // Length of the shortest solution when Solvable
	Path     []Direction // Shortest solution when Solvable
	Explored int         // Number of distinct positions visited
	GaveUp   bool        // Search stopped at the limit
}

type solverNode struct {
	state  State
	parent int
	dir    Direction
}

// Solve searches for the shortest move sequence that solves the level from its
// start position. The search is bounded by limit explored positions; a
// non-positive limit uses DefaultSolverLimit.
func Solve(l *Level, limit int) SolveResult {
	if limit <= 0 {
		limit = DefaultSolverLimit
	}

	start := NewState(0, l)
	if Solved(start.Boxes, l) {
		return SolveResult{Solvable: true, Explored: 1}
	}

	nodes := []solverNode{{state: start, parent: -1}}
	seen := map[string]bool{solverKey(start): true}

	for head := 0; head < len(nodes); head++ {
		cur := nodes[head].state
		for _, d := range Directions {
			next, outcome := Move(cur, d, l)
			if outcome == MoveRejected {
				continue
			}
			key := solverKey(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			nodes = append(nodes, solverNode{state: next, parent: head, dir: d})

			if next.Won {
				path := tracePath(nodes, len(nodes)-1)
				return SolveResult{Solvable: true, Moves: len(path), Path: path, Explored: len(seen)}
			}
			if len(seen) >= limit {
				return SolveResult{Explored: len(seen), GaveUp: true}
			}
		}
	}

	return SolveResult{Explored: len(seen)}
}

// solverKey identifies a position regardless of box slot order.
func solverKey(s State) string {
	boxes := slices.Clone(s.Boxes)
	slices.SortFunc(boxes, func(a, b Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.Player.X))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(s.Player.Y))
	for _, b := range boxes {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(b.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(b.Y))
	}
	return sb.String()
}

func tracePath(nodes []solverNode, i int) []Direction {
	var path []Direction
	for ; nodes[i].parent >= 0; i = nodes[i].parent {
		path = append(path, nodes[i].dir)
	}
	slices.Reverse(path)
	return path
}

// LintSolvable runs the solver and reports an issue if the level cannot be
// solved or the search hit its limit.
func LintSolvable(l *Level, limit int) []LintIssue {
	res := Solve(l, limit)
	switch {
	case res.GaveUp:
		return []LintIssue{{
			LevelID: l.ID(),
			Code:    IssueSolverGaveUp,
			Message: "solver stopped after " + strconv.Itoa(res.Explored) + " positions",
		}}
	case !res.Solvable:
		return []LintIssue{{
			LevelID: l.ID(),
			Code:    IssueUnsolvable,
			Message: "no sequence of moves solves this level",
		}}
	}
	return nil
}
