package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitcoach/booking-app/models"
	"github.com/fitcoach/booking-app/repository"
	"github.com/fitcoach/booking-app/utils"
)

const (
	msgMissingFields = "請填寫所有必填欄位"
	msgSubmitOK      = "預約提交成功！我們會盡快與您聯絡。"
	msgSubmitFailed  = "提交失敗: "
	msgListFailed    = "獲取資料失敗: "
)

type BookingController struct {
	Store repository.BookingStore
}

func NewBookingController(store repository.BookingStore) *BookingController {
	return &BookingController{Store: store}
}

// SubmitBooking handles POST /api/booking.
func (bc *BookingController) SubmitBooking(c *gin.Context) {
	type reqBody struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		LineID      string `json:"line_id"`
		ContactTime string `json:"contact_time"`
		Goal        string `json:"goal"`
	}
	var body reqBody
	// Lenient on purpose: a missing or malformed body leaves every field
	// empty and falls into the required-field check below.
	_ = c.ShouldBindJSON(&body)

	if body.Name == "" || body.Phone == "" || body.ContactTime == "" || body.Goal == "" {
		utils.RespondMessage(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	booking := models.Booking{
		Name:        body.Name,
		Phone:       body.Phone,
		LineID:      body.LineID,
		ContactTime: body.ContactTime,
		Goal:        body.Goal,
	}
	if err := bc.Store.Create(&booking); err != nil {
		utils.ErrorLogger.Errorf("create booking: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, msgSubmitFailed+err.Error())
		return
	}

	utils.RespondMessage(c, http.StatusOK, msgSubmitOK)
}

// GetAllBookings handles GET /api/bookings.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := bc.Store.ListAll()
	if err != nil {
		utils.ErrorLogger.Errorf("list bookings: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, msgListFailed+err.Error())
		return
	}

	utils.RespondBookings(c, bookings)
}
