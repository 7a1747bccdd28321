package questions

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/questions"
)

// registers the question routes. Reads are public; writes require
// authentication.
func RegisterRoutes(router *gin.RouterGroup, store questions.Store, codec *auth.Codec) {
	group := router.Group("/questions")
	{
		group.GET("", ListQuestionsHandler(store))
		group.GET("/:id", GetQuestionHandler(store))

		group.POST("", auth.Middleware(codec), CreateQuestionHandler(store))
		group.POST("/:id/answers", auth.Middleware(codec), CreateAnswerHandler(store))
	}
}
