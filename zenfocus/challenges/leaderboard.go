package challenges

import "sort"

// turns a participant list into a ranked leaderboard, highest score
// first. Ties are broken by username so ranks are deterministic.
func Rank(participants []Participant) []LeaderboardEntry {
	sorted := make([]Participant, len(participants))
	copy(sorted, participants)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Username < sorted[j].Username
	})

	leaderboard := make([]LeaderboardEntry, len(sorted))

	for i, p := range sorted {
		leaderboard[i] = LeaderboardEntry{
			Rank:     i + 1,
			Username: p.Username,
			Score:    p.Score,
		}
	}

	return leaderboard
}
