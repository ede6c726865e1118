package users

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The unique constraint is the authoritative guard; there is no pre-read.
var ErrDuplicateEmail = errors.New("email already registered")

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// FindByEmail does an exact-match lookup. Returns (nil, nil) when no user
// has the email.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns (nil, nil) when the id is unknown.
func (r *Repo) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	u := User{Email: email, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}
