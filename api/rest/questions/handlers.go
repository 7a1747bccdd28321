package questions

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/zenfocus/questions"
)

// ListQuestionsHandler lists all questions, newest first
func ListQuestionsHandler(store questions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list questions", err)
			return
		}

		c.JSON(http.StatusOK, QuestionsResponse{Questions: list})
	}
}

// GetQuestionHandler returns one question with its answers
func GetQuestionHandler(store questions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if stderrors.Is(err, questions.ErrNotFound) {
				errors.NotFound(c, "question")
				return
			}
			errors.InternalError(c, "failed to load question", err)
			return
		}

		c.JSON(http.StatusOK, question)
	}
}

// CreateQuestionHandler posts a question authored by the caller
func CreateQuestionHandler(store questions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req questions.CreateQuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		question, err := store.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create question", err)
			return
		}

		c.JSON(http.StatusCreated, question)
	}
}

// CreateAnswerHandler posts an answer to a question, authored by the
// caller
func CreateAnswerHandler(store questions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req questions.CreateAnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		answer, err := store.CreateAnswer(c.Request.Context(), c.Param("id"), userID, req)
		if err != nil {
			if stderrors.Is(err, questions.ErrNotFound) {
				errors.NotFound(c, "question")
				return
			}
			errors.InternalError(c, "failed to create answer", err)
			return
		}

		c.JSON(http.StatusCreated, answer)
	}
}
