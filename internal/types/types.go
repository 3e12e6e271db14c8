package types

import (
	"time"
)

// Roles a Zenith account can hold. The admin chat room is restricted to
// the role configured as admin (RoleCEO by default).
const (
	RoleCEO            = "CEO"
	RoleSeniorManager  = "Senior Manager"
	RoleProductManager = "Product Manager"
)

func ValidRole(role string) bool {
	switch role {
	case RoleCEO, RoleSeniorManager, RoleProductManager:
		return true
	}
	return false
}

type User struct {
	Id        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type Repository struct {
	Id         int       `json:"id"`
	ExternalId string    `json:"external_id"`
	Name       string    `json:"name"`
	Url        string    `json:"url"`
	OwnerId    int       `json:"-"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type Document struct {
	Id          int       `json:"id"`
	ExternalId  string    `json:"external_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	OwnerId     int       `json:"-"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}
