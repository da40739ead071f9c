package users

import (
	"time"

	"github.com/Spok95/project-assistant/internal/apperr"
)

const (
	// Collection — профили пользователей, документ = uid.
	Collection = "users"
	// credentialsCollection — хэши паролей, документ = uid.
	credentialsCollection = "credentials"
	// emailsCollection — индекс email -> uid, документ = нормализованный email.
	emailsCollection = "user_emails"
)

const MinPasswordLen = 6

var (
	ErrInvalidCredentials = apperr.New(apperr.KindAuth, "invalid email or password")
	ErrEmailTaken         = apperr.New(apperr.KindValidation, "email is already registered")
	ErrNotSignedIn        = apperr.New(apperr.KindAuth, "please sign in first")
	ErrInvalidToken       = apperr.New(apperr.KindAuth, "invalid or expired token")
)

type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
