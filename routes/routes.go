package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management/controllers"
	"hotel-management/middleware"
	"hotel-management/models"
	"hotel-management/session"
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

// Handlers bundles the controller instances the router dispatches to.
type Handlers struct {
	Rooms     *controllers.RoomController
	Bookings  *controllers.BookingController
	Payments  *controllers.PaymentController
	Staff     *controllers.StaffController
	Users     *controllers.UserController
	Settings  *controllers.SettingsController
	Dashboard *controllers.DashboardController
	Auth      *controllers.AuthController
}

// SetupRouter wires middleware and the API surface. Entity endpoints put the
// verb on the collection path and select rows with ?id= rather than path
// params.
func SetupRouter(h Handlers, sessions *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

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

	r.Use(middleware.LoadIdentity(sessions))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/session", h.Auth.Session)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)
			rooms.PUT("", h.Rooms.UpdateRoom)
			rooms.DELETE("", h.Rooms.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.Bookings.GetBookings)
			bookings.GET("/quote", h.Bookings.QuoteBooking)
			bookings.POST("", h.Bookings.CreateBooking)
			bookings.PUT("", h.Bookings.UpdateBooking)
			bookings.DELETE("", h.Bookings.DeleteBooking)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", h.Payments.GetPayments)
			payments.POST("", h.Payments.CreatePayment)
			payments.PUT("", h.Payments.UpdatePayment)
			payments.DELETE("", h.Payments.DeletePayment)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", h.Staff.GetStaff)
			staff.POST("", h.Staff.CreateStaff)
			staff.PUT("", h.Staff.UpdateStaff)
			staff.DELETE("", h.Staff.DeleteStaff)
		}

		users := api.Group("/users")
		{
			users.GET("", h.Users.GetUsers)
			users.POST("", h.Users.CreateUser)
			users.PUT("", h.Users.UpdateUser)
			users.DELETE("", h.Users.DeleteUser)
		}

		settings := api.Group("/hotel-settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.POST("", h.Settings.CreateSetting)
			settings.PUT("", h.Settings.UpdateSetting)
			settings.DELETE("", h.Settings.DeleteSetting)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist))
		{
			dashboard.GET("/stats", h.Dashboard.GetStats)
		}
	}

	return r
}
