package domain

import "time"

// Booking represents a confirmed appointment made by a customer.
// A booking embeds a snapshot of the time slot it was made for; the snapshot
// is written once at creation time and never updated afterwards.
type Booking struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
	TimeSlot      TimeSlot
	CreatedAt     time.Time
}

// CustomerInfo is the contact data a customer submits with a booking request.
type CustomerInfo struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
}
