package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/business-insights/internal/model"
)

const userColumns = "id,username,email,password_hash,role,otp_code,otp_expires_at,is_active,created_at"

// UserRepo persists users and their registration state.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// CreatePending inserts a user in the pending-OTP state. The password
// must already be hashed. Duplicate username or email maps to
// ErrDuplicateUser.
func (r *UserRepo) CreatePending(ctx context.Context, username, email, passwordHash, role, otp string, otpExpires time.Time) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, role, otp_code, otp_expires_at, is_active) VALUES (?,?,?,?,?,?,0)",
		username, email, passwordHash, role, otp, otpExpires)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Create inserts a verified user without OTP state (the plain
// POST /users path). The password must already be hashed.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string) (model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, role, is_active) VALUES (?,?,?,?,1)",
		username, email, passwordHash, model.RoleCustomer)
	if err != nil {
		if isDuplicateKey(err) {
			return model.User{}, ErrDuplicateUser
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetByOTP fetches the pending user holding the given one-time code.
// The lookup is by code alone, not scoped to a username or email; two
// pending registrations can in principle hold the same code. Callers
// must still check the expiry timestamp on the returned user.
func (r *UserRepo) GetByOTP(ctx context.Context, code string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE otp_code=? LIMIT 1", code))
}

// Activate clears the OTP fields and marks the user active. The clear is
// permanent; a verified user can never re-enter the pending state.
func (r *UserRepo) Activate(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET otp_code=NULL, otp_expires_at=NULL, is_active=1 WHERE id=?", id)
	return err
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var (
			u          model.User
			otp        sql.NullString
			otpExpires sql.NullTime
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
			&otp, &otpExpires, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		if otp.Valid {
			u.OTPCode = &otp.String
		}
		if otpExpires.Valid {
			u.OTPExpiresAt = &otpExpires.Time
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var (
		u          model.User
		otp        sql.NullString
		otpExpires sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&otp, &otpExpires, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	if otp.Valid {
		u.OTPCode = &otp.String
	}
	if otpExpires.Valid {
		u.OTPExpiresAt = &otpExpires.Time
	}
	return u, nil
}

// isDuplicateKey detects MySQL error 1062 (duplicate entry).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
