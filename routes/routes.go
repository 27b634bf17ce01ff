package routes

import (
	"net/http"
	"time"

	"meditrip/handlers"
	"meditrip/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/signin", hb.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
	}
}

// RegisterBookingRoutes sets up the order reconciliation and booking
// endpoints. The fix and verify operations take the order id in the JSON
// body.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/itinerary", hb.GetItineraryHandler)
		api.POST("/verify-flights", hb.VerifyFlightsHandler)
		api.POST("/fix-return-flight", hb.FixReturnFlightHandler)
		api.POST("/fix-order", hb.FixOrderHandler)
		api.POST("/reservations", hb.ConfirmReservationHandler)
		api.GET("/reservations", hb.GetReservationsHandler)
		api.POST("/payment", hb.ProcessPaymentHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthMiddleware())
		orders.POST("/:orderId/adjust-plan", hb.ProposeAdjustmentHandler)
		orders.POST("/:orderId/approve-adjustment", hb.DecideAdjustmentHandler)
	}
}

// RegisterCatalogRoutes registers the public hospital/doctor/travel search
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/hospitals", hb.ListHospitalsHandler)
		api.GET("/hospitals/search", hb.SearchHospitalsHandler)
		api.GET("/hospitals/:id", hb.GetHospitalHandler)
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/doctors/:id", hb.GetDoctorHandler)
		api.GET("/search/flights", hb.SearchFlightsHandler)
		api.GET("/search/hotels", hb.SearchHotelsHandler)
		api.GET("/attractions", hb.ListAttractionsHandler)
	}
}

// RegisterIntegrationRoutes registers the weather and exchange-rate proxies.
func RegisterIntegrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/weather", hb.GetWeatherHandler)
		api.GET("/weather/forecast", hb.GetWeatherForecastHandler)
		api.GET("/exchange", hb.GetExchangeRatesHandler)
		api.GET("/exchange/convert", hb.ConvertCurrencyHandler)
	}
}

// RegisterDocumentRoutes registers patient document storage and consultation
// transcription endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/documents/:folder", hb.UploadDocumentHandler)
		api.DELETE("/documents/:folder/:id", hb.DeleteDocumentHandler)
		api.POST("/voice/transcribe", hb.TranscribeConsultationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MediTrip"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterIntegrationRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
}
