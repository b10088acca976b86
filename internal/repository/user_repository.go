package repository

import (
	"context"
	"database/sql"

	"github.com/VamsidharReddy01/MyRestaurant/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, username, password, is_staff, created_at FROM users WHERE username = ?`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.IsStaff, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
