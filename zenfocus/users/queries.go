package users

const (
	queryCreate = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, productivity_score, skill_score, xp, created_at, updated_at
	`

	queryFindByEmail = `
		SELECT id, username, email, password_hash, productivity_score, skill_score, xp, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, username, email, password_hash, productivity_score, skill_score, xp, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryAddXP = `
		UPDATE users
		SET xp = xp + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, username, email, password_hash, productivity_score, skill_score, xp, created_at, updated_at
	`

	queryUpdateScores = `
		UPDATE users
		SET productivity_score = $1, skill_score = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, username, email, password_hash, productivity_score, skill_score, xp, created_at, updated_at
	`
)
