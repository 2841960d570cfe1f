package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Roles
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is both the login identity and the wallet account it owns.
type User struct {
	gorm.Model
	FirstName     string          `gorm:"not null"`
	LastName      string          `gorm:"not null"`
	OtherName     string
	Gender        string
	Address       string
	StateOfOrigin string
	Email         string          `gorm:"uniqueIndex;not null"`
	Password      string          `gorm:"not null" json:"-"`
	Role          string          `gorm:"default:'ROLE_USER'"`
	PhoneNumber   string          `gorm:"not null"`
	WalletNumber  string          `gorm:"uniqueIndex;size:10;not null;<-:create"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(19,2);not null;default:0"`
	TokenVersion  int             `gorm:"default:1"`
}

// WalletName is the display name printed on wallet responses.
func (u *User) WalletName() string {
	return strings.Join([]string{u.FirstName, u.OtherName, u.LastName}, " ")
}

// WalletInfo builds the public view of the user's wallet.
func (u *User) WalletInfo() *WalletInfo {
	return &WalletInfo{
		WalletName:    u.WalletName(),
		WalletBalance: u.WalletBalance,
		WalletNumber:  u.WalletNumber,
		PhoneNumber:   u.PhoneNumber,
	}
}

// UserRequest is the registration payload.
type UserRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	OtherName     string `json:"otherName"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	StateOfOrigin string `json:"stateOfOrigin"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,min=7,max=15"`
}

// LoginRequest carries the credentials for /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is returned by account creation.
type UserResponse struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	WalletInfo      *WalletInfo `json:"walletInfo"`
}
