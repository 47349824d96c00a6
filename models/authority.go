package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Authority is a government body handling exactly one category
type Authority struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Department         string             `bson:"department,omitempty" json:"department,omitempty"`
	Category           Category           `bson:"category" json:"category"`
	ContactPhone       string             `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ContactEmail       string             `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	EmergencyContact   string             `bson:"emergency_contact,omitempty" json:"emergency_contact,omitempty"`
	IsEmergencyService bool               `bson:"is_emergency_service" json:"is_emergency_service"`
	CoverageArea       string             `bson:"coverage_area,omitempty" json:"coverage_area,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// AuthorityContact is the contact card attached to an AI recommendation.
type AuthorityContact struct {
	Name             string `bson:"name" json:"name"`
	ContactPhone     string `bson:"contact_phone" json:"contact_phone"`
	ContactEmail     string `bson:"contact_email" json:"contact_email"`
	EmergencyContact string `bson:"emergency_contact" json:"emergency_contact"`
}

func (a *Authority) Contact() *AuthorityContact {
	return &AuthorityContact{
		Name:             a.Name,
		ContactPhone:     a.ContactPhone,
		ContactEmail:     a.ContactEmail,
		EmergencyContact: a.EmergencyContact,
	}
}
