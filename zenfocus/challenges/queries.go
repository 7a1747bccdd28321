package challenges

const (
	queryCreate = `
		INSERT INTO challenges (title, description, platform, start_date, end_date, difficulty, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, platform, start_date, end_date, difficulty, created_by, created_at
	`

	queryGet = `
		SELECT id, title, description, platform, start_date, end_date, difficulty, created_by, created_at
		FROM challenges
		WHERE id = $1
	`

	queryJoin = `
		INSERT INTO challenge_participants (challenge_id, user_id)
		VALUES ($1, $2)
	`

	queryParticipants = `
		SELECT cp.user_id, u.username, cp.status, cp.score
		FROM challenge_participants cp
		INNER JOIN users u ON cp.user_id = u.id
		WHERE cp.challenge_id = $1
		ORDER BY cp.score DESC, u.username ASC
	`

	queryUpdateScore = `
		UPDATE challenge_participants
		SET score = $1
		WHERE challenge_id = $2 AND user_id = $3
	`
)
