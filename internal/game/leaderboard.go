package game

import "sort"

// LeaderboardSize is the number of entries the leaderboard retains.
const LeaderboardSize = 5

// Entry is a single leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Leaderboard is the ordered top-N list of completed sessions, sorted by
// score descending. Equal scores keep their insertion order.
type Leaderboard []Entry

// Add appends a new result, re-sorts, and truncates to capacity.
// It returns the updated leaderboard; one entry is added per completed
// session, at game-over time.
func (l Leaderboard) Add(name string, score int) Leaderboard {
	out := append(append(Leaderboard{}, l...), Entry{Name: name, Score: score})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}
