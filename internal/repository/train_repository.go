package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/railway-reservation/internal/model"
)

// TrainRepo is the train registry. Creating a train seeds its seat
// inventory and deleting one destroys the inventory, so the registry
// holds a reference to the SeatRepo alongside the DB handle.
type TrainRepo struct {
	db         *sql.DB
	seats      *SeatRepo
	totalSeats int // inventory size seeded per train
}

// NewTrainRepo constructs a TrainRepo. totalSeats <= 0 means
// DefaultTotalSeats.
func NewTrainRepo(db *sql.DB, seats *SeatRepo, totalSeats int) *TrainRepo {
	if seats == nil {
		panic("nil SeatRepo passed to NewTrainRepo")
	}
	if totalSeats <= 0 {
		totalSeats = DefaultTotalSeats
	}
	return &TrainRepo{db: db, seats: seats, totalSeats: totalSeats}
}

// Create registers a train and seeds its seat inventory. All five
// fields are required and the train number must match the identifier
// format. A number that is already registered yields ErrDuplicateTrain
// and leaves the existing record and its inventory untouched.
func (r *TrainRepo) Create(ctx context.Context, t *model.Train) error {
	if t.Number == "" || t.Name == "" || t.DepartureDate == "" || t.Start == "" || t.End == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if err := validNumber(t.Number); err != nil {
		return err
	}

	const exists = `SELECT 1 FROM trains WHERE train_number = ?`
	var one int
	err := r.db.QueryRowContext(ctx, exists, t.Number).Scan(&one)
	if err == nil {
		return ErrDuplicateTrain
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	const ins = `INSERT INTO trains (train_number, train_name, departure_date, starting_destination, ending_destination)
	             VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, ins, t.Number, t.Name, t.DepartureDate, t.Start, t.End); err != nil {
		return err
	}

	return r.seats.EnsureInventory(ctx, t.Number, r.totalSeats)
}

// Delete removes a train and its seat inventory. The supplied departure
// date must equal the stored one; the mismatch error is a confirmation
// guard, not a concurrency check. The inventory is dropped before the
// registry row.
func (r *TrainRepo) Delete(ctx context.Context, trainNumber, departureDate string) error {
	if err := validNumber(trainNumber); err != nil {
		return err
	}

	const sel = `SELECT departure_date FROM trains WHERE train_number = ?`
	var stored string
	if err := r.db.QueryRowContext(ctx, sel, trainNumber).Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTrainNotFound
		}
		return err
	}
	if stored != departureDate {
		return ErrDateMismatch
	}

	if err := r.seats.DeleteByTrain(ctx, trainNumber); err != nil {
		return err
	}
	const del = `DELETE FROM trains WHERE train_number = ?`
	_, err := r.db.ExecContext(ctx, del, trainNumber)
	return err
}

// GetByNumber retrieves a train by its number.
func (r *TrainRepo) GetByNumber(ctx context.Context, trainNumber string) (*model.Train, error) {
	if err := validNumber(trainNumber); err != nil {
		return nil, err
	}
	const q = `SELECT train_number, train_name, departure_date, starting_destination, ending_destination
	           FROM trains WHERE train_number = ?`
	var t model.Train
	err := r.db.QueryRowContext(ctx, q, trainNumber).
		Scan(&t.Number, &t.Name, &t.DepartureDate, &t.Start, &t.End)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	return &t, nil
}

// SearchByRoute retrieves all trains running from start to end, in
// insertion order. An empty result is a nil slice, not an error.
func (r *TrainRepo) SearchByRoute(ctx context.Context, start, end string) ([]model.Train, error) {
	const q = `SELECT train_number, train_name, departure_date, starting_destination, ending_destination
	           FROM trains
	           WHERE starting_destination = ? AND ending_destination = ?
	           ORDER BY rowid`
	return r.queryTrains(ctx, q, start, end)
}

// ListAll retrieves every registered train in insertion order.
func (r *TrainRepo) ListAll(ctx context.Context) ([]model.Train, error) {
	const q = `SELECT train_number, train_name, departure_date, starting_destination, ending_destination
	           FROM trains
	           ORDER BY rowid`
	return r.queryTrains(ctx, q)
}

func (r *TrainRepo) queryTrains(ctx context.Context, query string, args ...interface{}) ([]model.Train, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Train
	for rows.Next() {
		var t model.Train
		if err := rows.Scan(&t.Number, &t.Name, &t.DepartureDate, &t.Start, &t.End); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
