package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-food-api/handlers"
	"campus-food-api/middleware"
	"campus-food-api/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, auth *middleware.Auth) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		public.GET("/menu", h.ListMenu)
		public.GET("/weather", h.GetWeather)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth.AuthRequired())
	{
		authed.GET("/profile", h.GetProfile)
	}

	// ── Campus ordering (students, faculty, HODs) ──────────────────
	orders := r.Group("/api/orders")
	orders.Use(auth.AuthRequired(), middleware.RoleRequired(models.RoleStudent, models.RoleFaculty, models.RoleHOD))
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.GetMyOrders)
		orders.GET("/:id", h.GetOrderDetail)
		orders.PUT("/:id/cancel", h.CancelOrder)
		orders.POST("/:id/feedback", h.SubmitFeedback)
	}

	// ── Canteen admin routes ───────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", h.AdminGetAllOrders)
		admin.GET("/orders/:id", h.AdminGetOrder)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/cancel", h.AdminCancelOrder)

		admin.PUT("/weather", h.AdminSetWeather)
		admin.GET("/feedback", h.AdminFeedbackReport)

		admin.POST("/menu", h.AddMenuItem)
		admin.PUT("/menu/:id", h.UpdateMenuItem)
		admin.PUT("/menu/:id/toggle", h.ToggleMenuItem)
		admin.DELETE("/menu/:id", h.DeleteMenuItem)
	}
}
