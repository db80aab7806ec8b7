package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/config"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/api/handler"
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/internal/api/middleware"
)

// Setup builds the Gin engine and wires every route.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── liveness ──
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── students ──
	students := r.Group("/students")
	{
		students.GET("", h.Student.ListStudents)
		students.POST("", h.Student.CreateStudent)
		students.GET("/export", h.Student.ExportStudents)
		students.PUT("/:id", h.Student.UpdateStudent)
		students.DELETE("/:id", h.Student.DeleteStudent)
	}

	return r
}
