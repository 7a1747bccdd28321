package questions

const (
	queryList = `
		SELECT q.id, q.user_id, u.username, q.title, q.content, q.created_at
		FROM questions q
		INNER JOIN users u ON q.user_id = u.id
		ORDER BY q.created_at DESC
	`

	queryGet = `
		SELECT q.id, q.user_id, u.username, q.title, q.content, q.created_at
		FROM questions q
		INNER JOIN users u ON q.user_id = u.id
		WHERE q.id = $1
	`

	queryListAnswers = `
		SELECT a.id, a.question_id, a.user_id, u.username, a.content, a.created_at
		FROM answers a
		INNER JOIN users u ON a.user_id = u.id
		WHERE a.question_id = $1
		ORDER BY a.created_at ASC
	`

	queryCreate = `
		INSERT INTO questions (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, content, created_at
	`

	queryCreateAnswer = `
		INSERT INTO answers (question_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, question_id, user_id, content, created_at
	`
)
