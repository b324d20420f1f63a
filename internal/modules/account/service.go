// README: Account service implements register, login, and history append.
package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrUserExists     = errors.New("user already exists")
	ErrNotFound       = errors.New("user not found")
	ErrBadCredentials = errors.New("authentication failed")
	ErrBadRequest     = errors.New("bad request")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Storage is the persistence contract the service runs against. The pgx
// store implements it in production; tests use an in-memory double.
type Storage interface {
	CreateUser(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	AppendSearch(ctx context.Context, userID types.ID, rec SearchRecord) error
	ListHistory(ctx context.Context, userID types.ID) ([]SearchRecord, error)
}

type Service struct {
	store Storage
}

func NewService(store Storage) *Service {
	return &Service{store: store}
}

type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Register validates the command, hashes the password, and creates the
// account with an empty history. All validation happens before the store is
// touched.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (types.ID, Profile, error) {
	cmd.FirstName = strings.TrimSpace(cmd.FirstName)
	cmd.LastName = strings.TrimSpace(cmd.LastName)
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
	cmd.Phone = strings.TrimSpace(cmd.Phone)

	if cmd.FirstName == "" || cmd.LastName == "" {
		return "", Profile{}, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if !emailPattern.MatchString(cmd.Email) {
		return "", Profile{}, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !phonePattern.MatchString(cmd.Phone) {
		return "", Profile{}, fmt.Errorf("%w: phone must be exactly 10 digits", ErrValidation)
	}
	if len(cmd.Password) < 8 {
		return "", Profile{}, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", Profile{}, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           types.ID(uuid.NewString()),
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return "", Profile{}, err
	}
	return u.ID, u.Profile(), nil
}

// Login checks the credential against the stored hash. The returned id is
// the opaque identifier the client retains for subsequent calls; there is no
// token, expiry, or revocation.
func (s *Service) Login(ctx context.Context, email, password string) (types.ID, Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", Profile{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", Profile{}, ErrBadCredentials
	}
	return u.ID, u.Profile(), nil
}

type AppendSearchCommand struct {
	UserID          types.ID
	PickupLocation  Location
	DropoffLocation Location
	SelectedRide    string
	FareAmount      float64
}

// AppendSearch records one fare-comparison event and returns the account's
// full history ordered by append time.
func (s *Service) AppendSearch(ctx context.Context, cmd AppendSearchCommand) ([]SearchRecord, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrBadRequest)
	}
	// A malformed id cannot resolve to an account.
	if _, err := uuid.Parse(string(cmd.UserID)); err != nil {
		return nil, ErrNotFound
	}
	if cmd.SelectedRide != "Uber" && cmd.SelectedRide != "Ola" {
		return nil, fmt.Errorf("%w: selectedRide must be Uber or Ola", ErrValidation)
	}

	rec := SearchRecord{
		PickupLocation:  cmd.PickupLocation,
		DropoffLocation: cmd.DropoffLocation,
		SelectedRide:    cmd.SelectedRide,
		FareAmount:      cmd.FareAmount,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.store.AppendSearch(ctx, cmd.UserID, rec); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, cmd.UserID)
}
