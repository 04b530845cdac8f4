package models

import "time"

// Session is the single authenticated-identity record, kept in session
// scope and destroyed on logout or expiry.
type Session struct {
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	LoginTime       time.Time `json:"loginTime"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}
