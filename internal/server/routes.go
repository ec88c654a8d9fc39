// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/manthan270/hirelite/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/manthan270/hirelite/internal/auth"
	"github.com/manthan270/hirelite/internal/controller/application"
	"github.com/manthan270/hirelite/internal/controller/jobs"
	"github.com/manthan270/hirelite/internal/middleware"
	"github.com/manthan270/hirelite/internal/model"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	if allowOriginsStr == "" {
		allowOriginsStr = "http://localhost:5173"
	}
	allowOrigins := strings.Split(allowOriginsStr, ",")

	authController := auth.NewAuthController(auth.MockIdentityProvider{}, s.Store.Sessions)
	jobController := jobs.NewJobController(s.Store)
	applicationController := application.NewApplicationController(s.Store)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", middleware.EnvRateLimitMiddleware(), authController.LoginHandler)
		}

		// Public listing endpoints; browsing needs no session
		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", jobController.ListJobs)
			jobRoute.GET("search", jobController.SearchJobs)
			jobRoute.GET(":id", jobController.GetJobByID)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.Store.Sessions))
			needAuth.POST("auth/logout", authController.LogoutHandler)
			needAuth.GET("auth/me", authController.MeHandler)

			// Candidate routes: apply role check once for all of them
			needCandidate := needAuth.Group("")
			{
				needCandidate.Use(middleware.CheckRole(model.RoleCandidate))
				needCandidate.POST("applications", middleware.SizeLimit(1<<20), applicationController.ApplyHandler)
				needCandidate.GET("applications/check", applicationController.CheckHandler)
				needCandidate.GET("applications/mine", applicationController.MineHandler)
				needCandidate.POST("jobs/:id/save", jobController.ToggleSave)
				needCandidate.GET("jobs/saved", jobController.ListSaved)
			}

			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer))
				needEmployer.GET("jobs/:id/applications", jobController.ApplicationsForJob)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Health())
}
