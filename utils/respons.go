package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/fitcoach/booking-app/models"
)

// JSONResponse is the envelope every /api endpoint answers with.
type JSONResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
	})
}

func RespondBookings(c *gin.Context, bookings []models.Booking) {
	// The list must serialize as [] even when empty, never null.
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	c.JSON(200, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}
