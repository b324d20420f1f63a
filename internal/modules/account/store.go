// README: Account store backed by PostgreSQL; constraints are the arbiter
// for duplicate and unknown-account races.
package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateUser inserts the account. There is deliberately no existence
// pre-check: two concurrent registrations race on the unique indexes, and
// the 23505 rejection is the authoritative "already exists" signal.
func (s *Store) CreateUser(ctx context.Context, u *User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(u.ID), u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash, u.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUserExists
	}
	return err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, password_hash, created_at
		FROM users
		WHERE email = $1`, email,
	)
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AppendSearch writes one history record. The foreign key on user_id is the
// authoritative unknown-account signal; no user lookup happens first.
func (s *Store) AppendSearch(ctx context.Context, userID types.ID, rec SearchRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_records (
			user_id,
			pickup_name, pickup_lat, pickup_lng,
			dropoff_name, dropoff_lat, dropoff_lng,
			selected_ride, fare_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(userID),
		rec.PickupLocation.Name, rec.PickupLocation.Coordinates.Lat, rec.PickupLocation.Coordinates.Lng,
		rec.DropoffLocation.Name, rec.DropoffLocation.Coordinates.Lat, rec.DropoffLocation.Coordinates.Lng,
		rec.SelectedRide, rec.FareAmount, rec.Timestamp,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrNotFound
	}
	return err
}

// ListHistory returns all records for the account ordered by append time.
func (s *Store) ListHistory(ctx context.Context, userID types.ID) ([]SearchRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT pickup_name, pickup_lat, pickup_lng,
		       dropoff_name, dropoff_lat, dropoff_lng,
		       selected_ride, fare_amount, created_at
		FROM search_records
		WHERE user_id = $1
		ORDER BY id`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []SearchRecord{}
	for rows.Next() {
		var rec SearchRecord
		err := rows.Scan(
			&rec.PickupLocation.Name, &rec.PickupLocation.Coordinates.Lat, &rec.PickupLocation.Coordinates.Lng,
			&rec.DropoffLocation.Name, &rec.DropoffLocation.Coordinates.Lat, &rec.DropoffLocation.Coordinates.Lng,
			&rec.SelectedRide, &rec.FareAmount, &rec.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		history = append(history, rec)
	}
	return history, rows.Err()
}
