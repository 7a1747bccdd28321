package activities

const (
	queryLog = `
		INSERT INTO activities (user_id, app_name, website_url, category, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, app_name, website_url, category, duration_minutes, date
	`

	queryListByUser = `
		SELECT id, user_id, app_name, website_url, category, duration_minutes, date
		FROM activities
		WHERE user_id = $1
		ORDER BY date DESC
	`
)
