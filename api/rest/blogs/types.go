package blogs

import "codeberg.org/zenfocus/server/zenfocus/blogs"

// BlogsResponse wraps a list of blogs
type BlogsResponse struct {
	Blogs []blogs.Blog `json:"blogs"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
