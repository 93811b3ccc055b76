package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin               UserRole = "admin"
	RoleDoctor              UserRole = "doctor"
	RoleReceptionist        UserRole = "receptionist"
	RolePharmacistDispenser UserRole = "pharmacist_dispenser"
	RolePharmacistInventory UserRole = "pharmacist_inventory"
)

// StaffRoles is the closed set of roles an admin can register and manage.
// The admin account itself is created through signup, not through this set.
var StaffRoles = []UserRole{
	RoleDoctor,
	RoleReceptionist,
	RolePharmacistDispenser,
	RolePharmacistInventory,
}

func IsValidStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}

type User struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name"`
	Email              string         `json:"email" gorm:"uniqueIndex"`
	Password           string         `json:"-"`
	NationalID         string         `json:"national_id" gorm:"uniqueIndex"`
	Role               UserRole       `json:"role" gorm:"index"`
	IsVerified         bool           `json:"is_verified"`
	VerificationToken  string         `json:"-"`
	VerificationExpiry *time.Time     `json:"-"`
	ResetToken         string         `json:"-"`
	ResetExpiry        *time.Time     `json:"-"`
	LastLogin          *time.Time     `json:"last_login,omitempty"`
	StaffProfile       *StaffProfile  `json:"staff_profile,omitempty" gorm:"foreignKey:UserID"`
	DoctorProfile      *DoctorProfile `json:"doctor_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// StaffProfile carries the fields every non-admin account has.
type StaffProfile struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Gender   string `json:"gender,omitempty"`
	IsActive bool   `json:"is_active"`
}

// DoctorProfile carries the doctor-only fields.
type DoctorProfile struct {
	gorm.Model
	UserID             uint   `json:"user_id" gorm:"uniqueIndex"`
	Speciality         string `json:"speciality"`
	RegistrationNumber string `json:"registration_number" gorm:"uniqueIndex"`
	Schedule           string `json:"schedule"`
}
