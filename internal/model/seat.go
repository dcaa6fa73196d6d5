package model

// Seat types as stored in seats.seat_type.  The values double as the
// labels the view layer renders, so they are capitalized words rather
// than enum codes.
const (
	SeatTypeWindow = "Window"
	SeatTypeAisle  = "Aisle"
	SeatTypeMiddle = "Middle"
)

// Seat describes one seat in a train's inventory.  Seats are uniquely
// identified by their train number and seat number.  A seat is either
// fully booked (all passenger fields populated) or fully unbooked (all
// passenger fields empty); no partial state exists.
//
// Fields:
//  TrainNumber     – seats.train_number.
//  SeatNumber      – seats.seat_number, 1-based, assigned at seed time.
//  SeatType        – seats.seat_type (Window, Aisle or Middle).
//  Booked          – seats.booked flag.
//  PassengerName   – seats.passenger_name, empty when unbooked.
//  PassengerAge    – seats.passenger_age, zero when unbooked.
//  PassengerGender – seats.passenger_gender, empty when unbooked.
type Seat struct {
	TrainNumber     string `json:"train_number"`
	SeatNumber      int    `json:"seat_number"`
	SeatType        string `json:"seat_type"`
	Booked          bool   `json:"booked"`
	PassengerName   string `json:"passenger_name,omitempty"`
	PassengerAge    int    `json:"passenger_age,omitempty"`
	PassengerGender string `json:"passenger_gender,omitempty"`
}

// Status derives the display status from the booked flag.
func (s Seat) Status() string {
	if s.Booked {
		return "Booked"
	}
	return "Available"
}

// CategorizeSeat assigns a seat type from the seat number.  The rule is
// fixed and purely arithmetic: within each decade of seat numbers, last
// digits 0/4/5/9 are Window, 2/3/6/7 are Aisle and 1/8 are Middle.
func CategorizeSeat(seatNumber int) string {
	switch seatNumber % 10 {
	case 0, 4, 5, 9:
		return SeatTypeWindow
	case 2, 3, 6, 7:
		return SeatTypeAisle
	default:
		return SeatTypeMiddle
	}
}

// ValidSeatType reports whether t is one of the three known seat types.
func ValidSeatType(t string) bool {
	switch t {
	case SeatTypeWindow, SeatTypeAisle, SeatTypeMiddle:
		return true
	}
	return false
}
