package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// UserType is the role picked on the mock login screen
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeDoctor  UserType = "doctor"
)

// Client state keys, stored per client under "client:<id>:<key>".
const (
	ClientKeyUserType        = "userType"
	ClientKeyUserEmail       = "userEmail"
	ClientKeyUserName        = "userName"
	ClientKeyFavoriteDoctors = "favoriteDoctors"
)

// Display names recorded by the mock login, which checks no credentials.
const (
	MockPatientName = "John Doe"
	MockDoctorName  = "Dr. Sarah Johnson"
)

// ClientStatePrefix is the key prefix shared by every value stored for one client.
func ClientStatePrefix(clientID uuid.UUID) string {
	return fmt.Sprintf("client:%s:", clientID)
}

func ClientStateKey(clientID uuid.UUID, name string) string {
	return ClientStatePrefix(clientID) + name
}

// ClientSession represents the mock logged-in state of one browsing client
type ClientSession struct {
	UserType  UserType
	UserEmail string
	UserName  string
}

// IsLoggedIn reports whether a user type has been recorded for the client
func (s ClientSession) IsLoggedIn() bool {
	return s.UserType != ""
}
