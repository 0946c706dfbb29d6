package sokoban

import "fmt"

// Lint issue codes.
const (
	IssueNoPlayer     = "NO_PLAYER"
	IssueManyPlayers  = "MANY_PLAYERS"
	IssueNoBoxes      = "NO_BOXES"
	IssueBoxGoalCount = "BOX_GOAL_MISMATCH"
	IssueEmptyLevel   = "EMPTY_LEVEL"
	IssueDuplicateID  = "DUPLICATE_ID"
	IssueUnsolvable   = "UNSOLVABLE"
	IssueSolverGaveUp = "SOLVER_LIMIT"
)

// LintIssue describes a problem found in level data.
// Issues never stop a level from loading; the initializer tolerates them.
type LintIssue struct {
	LevelID string
	Code    string
	Message string
}

func (i LintIssue) Error() string {
	return fmt.Sprintf("%s: [%s] %s", i.LevelID, i.Code, i.Message)
}

// Lint checks a single level for structural problems.
func Lint(l *Level) []LintIssue {
	var issues []LintIssue
	add := func(code, format string, args ...any) {
		issues = append(issues, LintIssue{LevelID: l.ID(), Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if l.Height() == 0 {
		add(IssueEmptyLevel, "level has no rows")
		return issues
	}

	players := 0
	for _, row := range l.cells {
		for _, code := range row {
			if code == CodePlayer || code == CodePlayerOnGoal {
				players++
			}
		}
	}
	switch {
	case players == 0:
		add(IssueNoPlayer, "no player start; player will start at (0,0)")
	case players > 1:
		add(IssueManyPlayers, "%d player starts; the last one is used", players)
	}

	_, boxes := Scan(l)
	goals := l.Goals()
	if len(boxes) == 0 {
		add(IssueNoBoxes, "no boxes; level counts as solved immediately")
	}
	if len(boxes) != len(goals) {
		add(IssueBoxGoalCount, "%d boxes but %d goals", len(boxes), len(goals))
	}

	return issues
}

// LintPack checks every level of a pack and reports duplicate IDs.
func LintPack(p *Pack) []LintIssue {
	var issues []LintIssue
	seen := make(map[string]bool)
	for _, l := range p.Levels {
		if seen[l.ID()] {
			issues = append(issues, LintIssue{
				LevelID: l.ID(),
				Code:    IssueDuplicateID,
				Message: "level ID used more than once",
			})
		}
		seen[l.ID()] = true
		issues = append(issues, Lint(l)...)
	}
	return issues
}
