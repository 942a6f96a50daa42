package users

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleScanner Role = "SCANNER"
)

func (r Role) String() string {
	return string(r)
}

// User is a back-office staff account. Buyers never log in.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'SCANNER'"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "staff_users"
}

func IsValidRole(role string) bool {
	switch Role(strings.ToUpper(role)) {
	case RoleAdmin, RoleScanner:
		return true
	default:
		return false
	}
}
