package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	UID       string    `firestore:"uid,omitempty" json:"uid"`
	Name      string    `firestore:"name,omitempty" json:"name"`
	Email     string    `firestore:"email,omitempty" json:"email"`
	Password  string    `firestore:"password,omitempty" json:"-"`
	Role      string    `firestore:"role,omitempty" json:"role"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt"`
}
