package repository // repository defines data access for seat inventories

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons
	"fmt"
	"strings"

	"github.com/iliyamo/railway-reservation/internal/model"
)

// DefaultTotalSeats is the inventory size seeded for a train when no
// explicit size is given.
const DefaultTotalSeats = 50

// SeatRepo manages one seat inventory per train number: lazy
// creation and seeding, allocation, booking and cancellation.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// validNumber wraps the model's identifier check in the repository's
// validation sentinel so handlers can map it with errors.Is.
func validNumber(trainNumber string) error {
	if err := model.ValidateTrainNumber(trainNumber); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// EnsureInventory creates and seeds the seat inventory for a train if it
// does not exist yet. Idempotent: an inventory that already has seats is
// left untouched. Inventories may be created lazily, so every read/write
// path calls this first. totalSeats <= 0 falls back to DefaultTotalSeats.
func (r *SeatRepo) EnsureInventory(ctx context.Context, trainNumber string, totalSeats int) error {
	if err := validNumber(trainNumber); err != nil {
		return err
	}
	if totalSeats <= 0 {
		totalSeats = DefaultTotalSeats
	}

	var count int
	const countQ = `SELECT COUNT(1) FROM seats WHERE train_number = ?`
	if err := r.db.QueryRowContext(ctx, countQ, trainNumber).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Seed seats 1..totalSeats in a single multi-values insert.
	query := `INSERT INTO seats (train_number, seat_number, seat_type, booked) VALUES `
	args := make([]interface{}, 0, totalSeats*3)
	for n := 1; n <= totalSeats; n++ {
		if n > 1 {
			query += ","
		}
		query += "(?, ?, ?, 0)"
		args = append(args, trainNumber, n, model.CategorizeSeat(n))
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// AllocateNextAvailable returns the lowest-numbered unbooked seat of the
// given type, or ErrNoAvailableSeat when the type is sold out. The
// inventory is ensured first since it may not have been materialized yet.
func (r *SeatRepo) AllocateNextAvailable(ctx context.Context, trainNumber, seatType string) (int, error) {
	if err := validNumber(trainNumber); err != nil {
		return 0, err
	}
	if err := r.EnsureInventory(ctx, trainNumber, 0); err != nil {
		return 0, err
	}
	return r.allocate(ctx, r.db, trainNumber, seatType)
}

// queryer lets allocate run against either the pool or an open transaction.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (r *SeatRepo) allocate(ctx context.Context, q queryer, trainNumber, seatType string) (int, error) {
	const sel = `SELECT seat_number FROM seats
	             WHERE train_number = ? AND seat_type = ? AND booked = 0
	             ORDER BY seat_number ASC LIMIT 1`
	var seat int
	err := q.QueryRowContext(ctx, sel, trainNumber, seatType).Scan(&seat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoAvailableSeat
		}
		return 0, err
	}
	return seat, nil
}

// Book allocates the lowest available seat of seatType on the train and
// marks it booked with the passenger details. Allocation and update run
// in one transaction so two callers cannot claim the same seat. Returns
// the assigned seat number.
func (r *SeatRepo) Book(ctx context.Context, trainNumber, passengerName string, passengerAge int, passengerGender, seatType string) (int, error) {
	if err := validNumber(trainNumber); err != nil {
		return 0, err
	}
	if err := r.trainExists(ctx, trainNumber); err != nil {
		return 0, err
	}
	if err := r.EnsureInventory(ctx, trainNumber, 0); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	seat, err := r.allocate(ctx, tx, trainNumber, seatType)
	if err != nil {
		return 0, err
	}

	const upd = `UPDATE seats
	             SET booked = 1,
	                 passenger_name = ?,
	                 passenger_age = ?,
	                 passenger_gender = ?
	             WHERE train_number = ? AND seat_number = ?`
	if _, err := tx.ExecContext(ctx, upd,
		strings.TrimSpace(passengerName), passengerAge, passengerGender,
		trainNumber, seat,
	); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return seat, nil
}

// Cancel unbooks a seat and clears all passenger fields. Cancelling an
// already-unbooked seat succeeds as a no-op; only an unknown train or a
// seat number outside the seeded range is an error.
func (r *SeatRepo) Cancel(ctx context.Context, trainNumber string, seatNumber int) error {
	if err := validNumber(trainNumber); err != nil {
		return err
	}
	if err := r.trainExists(ctx, trainNumber); err != nil {
		return err
	}
	if err := r.EnsureInventory(ctx, trainNumber, 0); err != nil {
		return err
	}

	const sel = `SELECT 1 FROM seats WHERE train_number = ? AND seat_number = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, sel, trainNumber, seatNumber).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSeatNotFound
		}
		return err
	}

	const upd = `UPDATE seats
	             SET booked = 0,
	                 passenger_name = NULL,
	                 passenger_age = NULL,
	                 passenger_gender = NULL
	             WHERE train_number = ? AND seat_number = ?`
	_, err := r.db.ExecContext(ctx, upd, trainNumber, seatNumber)
	return err
}

// ListByTrain retrieves a train's full inventory ordered by seat number.
func (r *SeatRepo) ListByTrain(ctx context.Context, trainNumber string) ([]model.Seat, error) {
	if err := validNumber(trainNumber); err != nil {
		return nil, err
	}
	if err := r.EnsureInventory(ctx, trainNumber, 0); err != nil {
		return nil, err
	}

	const q = `SELECT train_number, seat_number, seat_type, booked,
	                  passenger_name, passenger_age, passenger_gender
	           FROM seats
	           WHERE train_number = ?
	           ORDER BY seat_number ASC`
	rows, err := r.db.QueryContext(ctx, q, trainNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var (
			s      model.Seat
			name   sql.NullString
			age    sql.NullInt64
			gender sql.NullString
		)
		if err := rows.Scan(&s.TrainNumber, &s.SeatNumber, &s.SeatType, &s.Booked, &name, &age, &gender); err != nil {
			return nil, err
		}
		s.PassengerName = name.String
		s.PassengerAge = int(age.Int64)
		s.PassengerGender = gender.String
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TypeAvailability aggregates one seat type's free and booked counts.
type TypeAvailability struct {
	SeatType  string `json:"seat_type"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
}

// Availability summarizes the inventory per seat type, ordered by type
// name, together with the total seat count.
func (r *SeatRepo) Availability(ctx context.Context, trainNumber string) ([]TypeAvailability, int, error) {
	if err := validNumber(trainNumber); err != nil {
		return nil, 0, err
	}
	if err := r.EnsureInventory(ctx, trainNumber, 0); err != nil {
		return nil, 0, err
	}

	const q = `SELECT seat_type,
	                  SUM(CASE WHEN booked = 0 THEN 1 ELSE 0 END) AS available,
	                  SUM(CASE WHEN booked = 1 THEN 1 ELSE 0 END) AS booked
	           FROM seats
	           WHERE train_number = ?
	           GROUP BY seat_type
	           ORDER BY seat_type`
	rows, err := r.db.QueryContext(ctx, q, trainNumber)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summary []TypeAvailability
	total := 0
	for rows.Next() {
		var t TypeAvailability
		if err := rows.Scan(&t.SeatType, &t.Available, &t.Booked); err != nil {
			return nil, 0, err
		}
		total += t.Available + t.Booked
		summary = append(summary, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return summary, total, nil
}

// DeleteByTrain removes all seats belonging to a train. This is used
// when a train is deleted; the registry drops the inventory before the
// train row so a failed delete never strands a record whose inventory
// was kept.
func (r *SeatRepo) DeleteByTrain(ctx context.Context, trainNumber string) error {
	if err := validNumber(trainNumber); err != nil {
		return err
	}
	const q = `DELETE FROM seats WHERE train_number = ?`
	_, err := r.db.ExecContext(ctx, q, trainNumber)
	return err
}

// trainExists reports ErrTrainNotFound when no registry row matches.
func (r *SeatRepo) trainExists(ctx context.Context, trainNumber string) error {
	const q = `SELECT 1 FROM trains WHERE train_number = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, q, trainNumber).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTrainNotFound
		}
		return err
	}
	return nil
}
