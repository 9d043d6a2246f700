package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password`

const queryGetUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1;`

const queryGetUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1;`

const queryCreateUser = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING ` + userColumns + `;`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.CollectableRow) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	return u, err
}

func (r *UserRepository) getOne(ctx context.Context, op, sql string, args ...any) (*model.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, notFoundOr(err, "users", op)
	}

	user, err := pgx.CollectOneRow(rows, scanUser)
	if err != nil {
		return nil, notFoundOr(err, "users", op)
	}

	return &user, nil
}

// GetByEmail returns the user with the given email, or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "get user by email", queryGetUserByEmail, email)
}

// GetByID returns the user with the given id, or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "get user by id", queryGetUserByID, id)
}

// Create inserts a user and returns the stored row, including the
// store-assigned id.
func (r *UserRepository) Create(ctx context.Context, u model.NewUser) (*model.User, error) {
	return r.getOne(ctx, "create user", queryCreateUser, u.Name, u.Email, u.Password)
}
