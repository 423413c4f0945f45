package model

import "time"

const (
	ResourceRoom  = "room"
	ResourceAsset = "asset"

	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingRejected  = "rejected"
)

// Booking reserves one resource for the half-open interval [Start, End).
// End after Start is deliberately not enforced at write time; the
// availability check treats malformed intervals as invalid_time instead.
type Booking struct {
	ID           string    `json:"id" validate:"omitempty,max=64"`
	ResourceType string    `json:"resourceType" validate:"required,oneof=room asset"`
	ResourceID   string    `json:"resourceId" validate:"required,max=64"`
	Title        string    `json:"title" validate:"omitempty,max=200"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=confirmed pending rejected"`
	Notes        string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type BookingUpdate struct {
	ResourceType *string    `json:"resourceType,omitempty" validate:"omitempty,oneof=room asset"`
	ResourceID   *string    `json:"resourceId,omitempty" validate:"omitempty,max=64"`
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=confirmed pending rejected"`
	Notes        *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

func (u *BookingUpdate) Apply(b *Booking) {
	if u.ResourceType != nil {
		b.ResourceType = *u.ResourceType
	}
	if u.ResourceID != nil {
		b.ResourceID = *u.ResourceID
	}
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Start != nil {
		b.Start = *u.Start
	}
	if u.End != nil {
		b.End = *u.End
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Notes != nil {
		b.Notes = *u.Notes
	}
}
