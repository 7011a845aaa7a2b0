package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistry/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (firstname, lastname, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`
	err := r.DB.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, u.Address).
		Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT user_id, firstname, lastname, email, address
		FROM users
		WHERE user_id = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET firstname = $1, lastname = $2, email = $3, address = $4
		WHERE user_id = $5
		RETURNING user_id, firstname, lastname, email, address
	`
	updated := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, u.Address, u.ID).
		Scan(&updated.ID, &updated.FirstName, &updated.LastName, &updated.Email, &updated.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, err
	}
	return updated, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE user_id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
