package routes

import (
	"campus-dining-api/handlers"
	"campus-dining-api/middleware"
	"campus-dining-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)

		public.GET("/campuses", handlers.GetCampuses)
		public.GET("/halls", handlers.GetHalls)
		public.GET("/menu", handlers.GetMenu)
		public.POST("/menu/:id/like", handlers.LikeMenuItem)
		public.POST("/menu/:id/rating", handlers.RateMenuItem)
		public.POST("/suggestions", handlers.PostSuggestion)
		public.GET("/contact", handlers.GetContact)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/auth/register", handlers.Register)

		admin.POST("/campuses", handlers.CreateCampus)
		admin.PUT("/campuses/:id", handlers.UpdateCampus)
		admin.DELETE("/campuses/:id", handlers.DeleteCampus)

		admin.PUT("/contact", handlers.UpdateContact)

		admin.GET("/users", handlers.GetUsers)
		admin.POST("/users", handlers.CreateUser)
		admin.DELETE("/users/:id", handlers.DeleteUser)
	}

	// ── Admin or campus-scoped manager routes ──────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		staff.POST("/halls", handlers.CreateHall)
		staff.PUT("/halls/:id", handlers.UpdateHall)
		staff.DELETE("/halls/:id", handlers.DeleteHall)

		staff.POST("/menu", handlers.CreateMenuItem)
		staff.PUT("/menu/:id", handlers.UpdateMenuItem)
		staff.DELETE("/menu/:id", handlers.DeleteMenuItem)
		staff.POST("/menu/copy", handlers.CopyMenu)
	}

	// ── Authenticated routes (self-update allowed) ─────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.PUT("/users/:id", handlers.UpdateUser)
	}
}
