// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds carried in the "event" field of every message on the
// ticket.events queue.
const (
	EventTicketBooked    = "ticket.booked"
	EventTicketCancelled = "ticket.cancelled"
)

// TicketBookedEvent is published when a seat is successfully booked.
// It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type TicketBookedEvent struct {
	TrainNumber   string `json:"train_number"`
	SeatNumber    int    `json:"seat_number"`
	SeatType      string `json:"seat_type"`
	PassengerName string `json:"passenger_name"`
	BookedAt      string `json:"booked_at"`
}

// TicketCancelledEvent is published when a seat booking is cancelled.
type TicketCancelledEvent struct {
	TrainNumber string `json:"train_number"`
	SeatNumber  int    `json:"seat_number"`
	CancelledAt string `json:"cancelled_at"`
}
