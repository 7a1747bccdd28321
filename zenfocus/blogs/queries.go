package blogs

const (
	queryList = `
		SELECT b.id, b.user_id, u.username, b.title, b.content, b.image, b.tags, b.created_at, b.updated_at
		FROM blogs b
		INNER JOIN users u ON b.user_id = u.id
		ORDER BY b.created_at DESC
	`

	queryGet = `
		SELECT b.id, b.user_id, u.username, b.title, b.content, b.image, b.tags, b.created_at, b.updated_at
		FROM blogs b
		INNER JOIN users u ON b.user_id = u.id
		WHERE b.id = $1
	`

	queryCreate = `
		INSERT INTO blogs (user_id, title, content, image, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, content, image, tags, created_at, updated_at
	`

	queryUpdate = `
		UPDATE blogs
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    image = COALESCE($3, image),
		    tags = COALESCE($4, tags),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id, user_id, title, content, image, tags, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM blogs
		WHERE id = $1
	`
)
