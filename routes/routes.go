package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"facilityai/handlers"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Health  *handlers.HealthHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Records *handlers.RecordsHandler
}

// RegisterRoutes wires the HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", hb.Health.Root)
	r.GET("/test", hb.Health.TestDatabase)

	api := r.Group("/api")
	{
		api.POST("/availability", hb.Booking.CheckAvailability)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.POST("/payment-links", hb.Payment.CreatePaymentLink)

		api.POST("/slots", hb.Records.CreateSlot)
		api.POST("/records/:collection", hb.Records.CreateRecord)
		api.GET("/records/:collection/:id", hb.Records.GetRecord)
	}
}
