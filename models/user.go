package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Email       string              `bson:"email" json:"email"`
	Password    string              `bson:"password,omitempty" json:"-"`
	NIC         string              `bson:"nic,omitempty" json:"nic,omitempty"`
	Phone       string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Role        Role                `bson:"role" json:"role"`
	AuthorityID *primitive.ObjectID `bson:"authority_id,omitempty" json:"authority_id,omitempty"`
	IsVerified  bool                `bson:"is_verified" json:"is_verified"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// CanManageIssues reports whether the user may change issue status.
func (u *User) CanManageIssues() bool {
	return u.Role == RoleOfficer || u.Role == RoleAdmin
}
