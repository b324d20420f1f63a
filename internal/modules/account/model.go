// README: Account aggregate and search-history record shapes.
package account

import (
	"time"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

type User struct {
	ID           types.ID
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public view of an account. The password hash never leaves
// the module.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u *User) Profile() Profile {
	return Profile{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// Location is a resolved place as selected in the client.
type Location struct {
	Name        string      `json:"name"`
	Coordinates types.Point `json:"coordinates"`
}

// SearchRecord is one fare-comparison event. Records are append-only: they
// are never mutated or deleted once written.
type SearchRecord struct {
	PickupLocation  Location  `json:"pickupLocation"`
	DropoffLocation Location  `json:"dropoffLocation"`
	SelectedRide    string    `json:"selectedRide"`
	FareAmount      float64   `json:"fareAmount"`
	Timestamp       time.Time `json:"timestamp"`
}
