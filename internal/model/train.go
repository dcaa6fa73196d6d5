package model

import (
	"errors"
	"regexp"
)

// Train describes a scheduled service in the registry.  Trains are
// uniquely identified by their train number, an operator-supplied
// code such as "RJ12_EXP".  The departure date is stored as an
// ISO-8601 string so that it round-trips the store unchanged.
//
// Fields:
//  Number        – trains.train_number, the unique identifier.
//  Name          – trains.train_name, human-readable service name.
//  DepartureDate – trains.departure_date in YYYY-MM-DD form.
//  Start         – trains.starting_destination.
//  End           – trains.ending_destination.
type Train struct {
	Number        string `json:"train_number"`
	Name          string `json:"train_name"`
	DepartureDate string `json:"departure_date"`
	Start         string `json:"starting_destination"`
	End           string `json:"ending_destination"`
}

// trainNumberPattern is the identifier format accepted everywhere a
// train number enters the system: letters, digits and underscores only.
var trainNumberPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ErrInvalidTrainNumber is returned by ValidateTrainNumber for numbers
// that are empty or contain characters outside the allowed set.
var ErrInvalidTrainNumber = errors.New("train number must contain only letters, digits, or underscores")

// ValidateTrainNumber checks that a train number matches the identifier
// format.  Every core entry point that receives a train number calls
// this before touching the store.
func ValidateTrainNumber(number string) error {
	if !trainNumberPattern.MatchString(number) {
		return ErrInvalidTrainNumber
	}
	return nil
}
