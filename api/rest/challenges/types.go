package challenges

import "codeberg.org/zenfocus/server/zenfocus/challenges"

// UpdateScoreRequest carries a participant's new score
type UpdateScoreRequest struct {
	Score int `json:"score" binding:"min=0"`
}

// LeaderboardResponse wraps a ranked leaderboard
type LeaderboardResponse struct {
	Leaderboard []challenges.LeaderboardEntry `json:"leaderboard"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
