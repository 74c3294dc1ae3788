package routes

import (
	"context"
	"net/http"
	"time"

	"devdash-backend/internal/config"
	"devdash-backend/internal/handlers"
	"devdash-backend/internal/middleware"
	"devdash-backend/internal/services"
	"devdash-backend/pkg/markdown"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options overrides collaborators that tests replace.
type Options struct {
	HTTPClient *http.Client
}

// Setup builds the router. Background work started by middleware stops when ctx is done.
func Setup(ctx context.Context, db *gorm.DB, cfg *config.Config, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimitMiddleware(ctx, cfg.Server.RateLimit))

	tags := services.NewTagNormalizer()
	extractor := services.NewProblemExtractor(
		opts.HTTPClient,
		time.Duration(cfg.Extract.TimeoutSeconds)*time.Second,
		cfg.Extract.UserAgent,
	)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db), cfg)
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(db, tags))
	noteHandler := handlers.NewNoteHandler(services.NewNoteService(db, tags, markdown.NewRenderer(markdown.DefaultCodeStyle)))
	folderHandler := handlers.NewFolderHandler(services.NewFolderService(db))
	tagHandler := handlers.NewTagHandler(services.NewTagService(db))
	leetcodeHandler := handlers.NewLeetcodeHandler(services.NewLeetcodeService(db), extractor)
	chatgptHandler := handlers.NewChatgptHandler(services.NewChatgptService(db))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(db))

	api := router.Group("/api")

	public := api.Group("")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(db, cfg))
	{
		protected.GET("/auth/me", authHandler.GetMe)

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", noteHandler.GetNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/:id", noteHandler.GetNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		folders := protected.Group("/folders")
		{
			folders.GET("", folderHandler.GetFolders)
			folders.POST("", folderHandler.CreateFolder)
		}

		protected.GET("/tags", tagHandler.GetTags)

		leetcode := protected.Group("/leetcode")
		{
			leetcode.GET("", leetcodeHandler.GetProblems)
			leetcode.POST("", leetcodeHandler.CreateProblem)
			leetcode.POST("/extract", leetcodeHandler.ExtractProblem)
			leetcode.GET("/:id", leetcodeHandler.GetProblem)
			leetcode.PUT("/:id", leetcodeHandler.UpdateProblem)
			leetcode.DELETE("/:id", leetcodeHandler.DeleteProblem)
		}

		chatgpt := protected.Group("/chatgpt")
		{
			chatgpt.GET("", chatgptHandler.GetChats)
			chatgpt.POST("", chatgptHandler.CreateChat)
			chatgpt.GET("/:id", chatgptHandler.GetChat)
			chatgpt.PUT("/:id", chatgptHandler.UpdateChat)
			chatgpt.DELETE("/:id", chatgptHandler.DeleteChat)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
