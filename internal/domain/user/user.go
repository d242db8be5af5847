// Package user defines the admin account entity and its repository interface.
package user

import (
	"context"
	"time"
)

// AdminUser is an owner account for the admin panel. The hash carries a
// json tag so the file-backed store can persist it; handlers must never
// marshal this struct into a response body.
type AdminUser struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"passwordHash" bson:"passwordHash"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Repository defines the operations for persisting admin accounts.
// Email lookup is case-insensitive; implementations store and compare
// the lowercased form.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*AdminUser, error)
	FindByID(ctx context.Context, id string) (*AdminUser, error)
	Store(ctx context.Context, u *AdminUser) error
	Count(ctx context.Context) (int, error)
}
