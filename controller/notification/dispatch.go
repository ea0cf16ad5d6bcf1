package notification

import (
	"mindu/middleware"
	"mindu/scheduler"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DispatchController exposes a manual trigger for one dispatch cycle. The
// cron job is the normal driver; this exists for operations and debugging.
func DispatchController(router *gin.Engine, dispatcher *scheduler.Dispatcher) {
	router.POST("/notification/dispatch", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		RunDispatchCycle(c, dispatcher)
	})
}

func RunDispatchCycle(c *gin.Context, dispatcher *scheduler.Dispatcher) {
	summary := dispatcher.RunCycle(c.Request.Context(), time.Now())
	c.JSON(http.StatusOK, summary)
}
