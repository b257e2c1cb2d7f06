package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"memberdesk/internal/adapter/http/handlers"
	"memberdesk/internal/adapter/http/middleware"
	"memberdesk/pkg/envelope"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	memberHandler *handlers.MemberHandler,
	taskHandler *handlers.TaskHandler,
	staticDir string,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/status", healthHandler.CheckStatus)
		api.GET("/ping", healthHandler.Ping)

		api.GET("/members", memberHandler.ListMembers)
		api.POST("/members", memberHandler.CreateMember)
		api.PUT("/members/:id", memberHandler.UpdateMember)
		api.DELETE("/members/:id", memberHandler.DeleteMember)

		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}

	// Unmatched /api paths get a 404 envelope for every method; everything
	// else falls through to the client application so it can route itself.
	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			lang := c.GetHeader("Accept-Language")
			if lang == "" {
				lang = "en"
			}
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgEndpointNotFound, lang))
			return
		}
		serveClient(c, staticDir)
	})
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// serveClient serves an existing static asset, or the entry document for
// any other path so client-side routes resolve after a hard reload.
func serveClient(c *gin.Context, staticDir string) {
	requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}
	c.File(filepath.Join(staticDir, "index.html"))
}
