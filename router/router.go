package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitcoach/booking-app/controllers"
	"github.com/fitcoach/booking-app/middlewares"
	"github.com/fitcoach/booking-app/repository"
	"github.com/fitcoach/booking-app/static"
)

// SetupRouter wires the booking API and the static marketing site onto one engine.
func SetupRouter(store repository.BookingStore, staticRoot string) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	bookingCtrl := controllers.NewBookingController(store)
	resolver := static.NewResolver(staticRoot)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      BOOKING API
	// ----------------------------------------------------------------
	// 10 req/s per IP with a small burst keeps the public form usable
	// while blunting scripted spam.
	rateLimiter := middlewares.NewRateLimiter(10, 20)

	api := r.Group("/api")
	api.Use(rateLimiter.RateLimit())
	{
		api.POST("/booking", bookingCtrl.SubmitBooking)
		api.GET("/bookings", bookingCtrl.GetAllBookings)
	}

	// ----------------------------------------------------------------
	//                      MARKETING PAGES
	// ----------------------------------------------------------------
	for _, route := range static.PageRoutes() {
		route := route
		r.GET(route, func(c *gin.Context) {
			file, ok := resolver.ResolvePage(route)
			serveResolved(c, file, ok)
		})
	}

	// Catch-all for css/, img/, shared includes and loose .html files.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		file, ok := resolver.Resolve(c.Request.URL.Path)
		serveResolved(c, file, ok)
	})

	return r
}

func serveResolved(c *gin.Context, file string, ok bool) {
	if !ok {
		c.String(http.StatusNotFound, "File not found: %s", c.Request.URL.Path)
		return
	}
	c.File(file)
}
