package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"chusu_backend/internal/config"
	authhandler "chusu_backend/internal/feature/auth/transport/handler"
	fruithandler "chusu_backend/internal/feature/fruits/transport/handler"
	notehandler "chusu_backend/internal/feature/notes/transport/handler"
	reminderhandler "chusu_backend/internal/feature/reminders/transport/handler"
	platformhandler "chusu_backend/internal/platform/http/handler"
	platformmw "chusu_backend/internal/platform/http/middleware"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with the full route table.
func NewRouter(cfg *config.Config, db *gorm.DB,
	authH *authhandler.AuthHandler,
	fruitH *fruithandler.FruitHandler,
	reminderH *reminderhandler.ReminderHandler,
	noteH *notehandler.NoteHandler) *gin.Engine {
	r := gin.Default()

	if len(cfg.FrontendOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.FrontendOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.Default())
	}

	// 認証不要
	r.GET("/health", platformhandler.Health(db))
	r.HEAD("/health", platformhandler.Health(db))
	r.GET("/", welcome)
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(platformmw.RequireDatabase(db))
	auth.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	{
		auth.GET("/auth/me", authH.Me)
		auth.PUT("/auth/update", authH.UpdateProfile)
		auth.PUT("/auth/change-password", authH.ChangePassword)

		auth.GET("/fruits", fruitH.List)
		auth.POST("/fruits", fruitH.Create)
		// Literal /fruits/export/* segments take precedence over :id.
		auth.GET("/fruits/export/csv", fruitH.ExportCSV)
		auth.GET("/fruits/export/pdf", fruitH.ExportPDF)
		auth.GET("/fruits/:id", fruitH.Get)
		auth.PUT("/fruits/:id", fruitH.Update)
		auth.DELETE("/fruits/:id", fruitH.Delete)

		auth.GET("/reminders", reminderH.List)
		auth.GET("/reminders/urgent", reminderH.ListUrgent)
		auth.POST("/reminders", reminderH.Create)
		auth.PUT("/reminders/:id", reminderH.Update)
		auth.DELETE("/reminders/:id", reminderH.Delete)

		auth.GET("/notes", noteH.List)
		auth.GET("/notes/:id", noteH.Get)
		auth.POST("/notes", noteH.Create)
		auth.PUT("/notes/:id", noteH.Update)
		auth.DELETE("/notes/:id", noteH.Delete)
	}

	return r
}

// welcome answers the root path with a short endpoint directory.
func welcome(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Bienvenue sur l'API CHUSU NOTE",
		"version": "1.0.0",
		"endpoints": gin.H{
			"auth":      "/auth",
			"fruits":    "/fruits",
			"reminders": "/reminders",
			"notes":     "/notes",
		},
	})
}
