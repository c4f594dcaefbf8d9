package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/LourceDev/3pages/internal/model"
	"github.com/LourceDev/3pages/internal/pkg/dbutil"
	appErr "github.com/LourceDev/3pages/internal/pkg/errors"
)

var userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts the user and fills in the generated id and timestamp.
// Email uniqueness is enforced by the schema; a duplicate comes back as
// ErrConflict no matter how the insert races with another signup.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	query, args := dbutil.Finalize(
		"INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?) RETURNING id, created_at",
		[]interface{}{user.Email, user.Name, user.PasswordHash},
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, map[string]interface{}{"email": email})
}

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	return r.getOne(ctx, map[string]interface{}{"id": userID})
}

func (r *UserRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.User, error) {
	sqlStr, args, err := builder.BuildSelect("users", where, userColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, appErr.ErrNotFound
	}
	var user model.User
	if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}
