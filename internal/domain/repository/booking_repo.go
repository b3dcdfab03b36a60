package repository

import (
	"context"

	"planora/internal/domain/model"
)

// BookingRepository is the port for the booking store
type BookingRepository interface {
	Save(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error

	FindByEventID(ctx context.Context, eventID string) ([]*model.Booking, error)
	FindByClientID(ctx context.Context, clientID string) ([]*model.Booking, error)

	// FindViewsByClientID joins each booking with its event document.
	FindViewsByClientID(ctx context.Context, clientID string) ([]*model.BookingView, error)

	DeleteByEventID(ctx context.Context, eventID string) error
	UpdateStatusByEventID(ctx context.Context, eventID string, status model.BookingStatus) error
}
