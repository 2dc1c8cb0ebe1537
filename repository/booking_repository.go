package repository

import (
	"gorm.io/gorm"

	"github.com/fitcoach/booking-app/models"
)

// BookingStore is the persistence boundary for booking records.
// Records are only ever created and listed, never updated or deleted.
type BookingStore interface {
	Create(booking *models.Booking) error
	ListAll() ([]models.Booking, error)
	Migrate() error
}

type GormBookingStore struct {
	DB *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{DB: db}
}

// Migrate ensures the bookings table exists. Safe to call on every startup.
func (s *GormBookingStore) Migrate() error {
	return s.DB.AutoMigrate(&models.Booking{})
}

func (s *GormBookingStore) Create(booking *models.Booking) error {
	return s.DB.Create(booking).Error
}

// ListAll returns every booking, most recent first. Ties on created_at fall
// back to id descending so the ordering stays deterministic.
func (s *GormBookingStore) ListAll() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.DB.Order("created_at DESC, id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
