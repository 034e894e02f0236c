package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a back-office account. Either Email or MobileNo must be set;
// both are unique when present.
type User struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Email     *string `json:"email" gorm:"uniqueIndex"`
	MobileNo  *string `json:"mobile_no" gorm:"size:15;uniqueIndex"`
	FirstName string  `json:"first_name" gorm:"size:100"`
	LastName  string  `json:"last_name" gorm:"size:100"`
	Password  []byte  `json:"-"`

	RoleID *uint `json:"role_id"`
	Role   *Role `json:"role" gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL"`

	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsSuperuser bool      `json:"is_superuser"`
	IsStaff     bool      `json:"is_staff"`
	DateJoined  time.Time `json:"date_joined" gorm:"autoCreateTime"`
}

func (user *User) SetPassword(password string) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	user.Password = hashedPassword
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}

// FullName joins first and last name for display fields.
func (user *User) FullName() string {
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}
