package models

import "time"

// Address is the delivery-address slice of a profile, copied by value into
// orders at checkout.
type Address struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	Province   string `bson:"province" json:"province"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Profile is durable and outlives a logout; it is mutated only through
// validated partial writes.
type Profile struct {
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	MobileNumber string    `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	Address      `bson:",inline"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
