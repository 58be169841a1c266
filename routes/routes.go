package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hive-backend/controllers"
	"hive-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller onto the /api surface. The admin and
// tenant groups are gated by the session cookie middleware.
func SetupRouter(
	auth *controllers.AuthController,
	requests *controllers.RequestController,
	utilities *controllers.UtilityController,
	activity *controllers.ActivityController,
	rooms *controllers.RoomController,
	tenants *controllers.TenantController,
	notices *controllers.NoticeController,
	fixes *controllers.FixController,
	events *controllers.EventController,
	feedback *controllers.FeedbackController,
	dashboard *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		public := api.Group("/auth")
		{
			public.POST("/register", auth.AdminRegister)
			public.POST("/login", auth.AdminLogin)
			public.POST("/tenant-login", auth.TenantLogin)
			public.POST("/forgot-password", auth.ForgotPassword)
			public.POST("/reset-password/:token", auth.ResetPassword)
		}

		admin := api.Group("/auth", middleware.RequireAdmin())
		{
			admin.GET("/check-auth", auth.CheckAuth)
			admin.POST("/logout", auth.AdminLogout)
			admin.PUT("/update-password", auth.UpdateAdminPassword)

			admin.GET("/dashboard", dashboard.AdminDashboard)

			admin.GET("/requests", requests.EstablishmentRequests)
			admin.GET("/requests/approved", requests.ApprovedRequests)
			admin.PUT("/requests/:requestId/decision", requests.DecideRequest)
			admin.PUT("/requests/:requestId/checkin", requests.CheckInRequest)

			admin.GET("/utilities", utilities.EstablishmentUtilities)
			admin.POST("/utilities", utilities.AddUtility)
			admin.GET("/utilities/:utilityId", utilities.GetUtility)
			admin.PUT("/utilities/:utilityId", utilities.UpdateUtility)
			admin.DELETE("/utilities/:utilityId", utilities.DeleteUtility)
			admin.GET("/rooms/:roomId/utilities", utilities.RoomUtilities)

			admin.GET("/rooms", rooms.EstablishmentRooms)
			admin.GET("/rooms/available", rooms.AvailableRooms)
			admin.POST("/rooms", rooms.AddRoom)
			admin.GET("/rooms/:roomId", rooms.GetRoom)
			admin.PUT("/rooms/:roomId", rooms.UpdateRoom)
			admin.DELETE("/rooms/:roomId", rooms.DeleteRoom)
			admin.GET("/rooms/:roomId/tenants", tenants.RoomTenants)

			admin.GET("/tenants", tenants.EstablishmentTenants)
			admin.POST("/tenants", tenants.AddTenant)
			admin.GET("/tenants/:tenantId", tenants.GetTenant)
			admin.PUT("/tenants/:tenantId", tenants.UpdateTenant)
			admin.DELETE("/tenants/:tenantId", tenants.DeleteTenant)

			admin.GET("/notices", notices.Notices)
			admin.POST("/notices", notices.AddNotice)
			admin.PUT("/notices/:noticeId/pinned", notices.TogglePinned)
			admin.PUT("/notices/:noticeId/permanent", notices.TogglePermanent)
			admin.DELETE("/notices/:noticeId", notices.DeleteNotice)

			admin.GET("/fixes", fixes.EstablishmentFixes)
			admin.PUT("/fixes/:fixId/status", fixes.UpdateFixStatus)

			admin.GET("/events", events.Events)
			admin.POST("/events", events.AddEvent)
			admin.PUT("/events/:eventId", events.UpdateEvent)
			admin.DELETE("/events/:eventId", events.DeleteEvent)

			admin.GET("/activity-log", activity.AdminActivity)
			admin.POST("/feedback", feedback.SubmitAdminFeedback)
		}

		tenant := api.Group("/auth/tenant", middleware.RequireTenant())
		{
			tenant.GET("/check-auth", auth.TenantCheckAuth)
			tenant.POST("/logout", auth.TenantLogout)

			tenant.GET("/dashboard", dashboard.TenantDashboard)
			tenant.GET("/profile", tenants.Profile)
			tenant.PUT("/profile", tenants.UpdateProfile)
			tenant.PUT("/update-password", tenants.UpdateTenantPassword)

			tenant.GET("/requests", requests.TenantRequests)
			tenant.POST("/requests", requests.AddRequest)
			tenant.PUT("/requests/:requestId/cancel", requests.CancelRequest)

			tenant.GET("/utilities", utilities.CurrentCharges)
			tenant.GET("/utilities/history", utilities.ChargeHistory)

			tenant.GET("/notices", notices.Notices)

			tenant.GET("/fixes", fixes.TenantFixes)
			tenant.POST("/fixes", fixes.SubmitFix)

			tenant.GET("/activity-log", activity.TenantActivity)
			tenant.POST("/feedback", feedback.SubmitTenantFeedback)
		}
	}

	return r
}
