package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	PlanFree   = "free"
	PlanPro6Mo = "pro-6mo"
)

// User is the owning entity for all per-user resources. The Stripe columns
// mirror the latest-known state reported by the billing provider; Plan is
// only ever written by signup defaults and the subscription reconciler.
type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Email                string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password             string    `gorm:"type:text" json:"-" validate:"required,min=6"`
	Plan                 string    `gorm:"type:varchar(20);not null;default:'free'" json:"plan" validate:"oneof=free pro-6mo"`
	StripeCustomerID     string    `gorm:"type:varchar(191);default:null;index" json:"-"`
	StripeSubscriptionID string    `gorm:"type:varchar(191);default:null" json:"-"`
	PlanRenewal          *int64    `json:"plan_renewal,omitempty"` // period end, epoch seconds
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func CreateUser(email string, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: pw,
		Plan:     PlanFree,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// IsPro reports whether the user currently has a paid plan.
func (u *User) IsPro() bool {
	return u.Plan == PlanPro6Mo
}
