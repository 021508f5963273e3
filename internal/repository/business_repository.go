package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/business-insights/internal/model"
)

// BusinessRepo persists businesses.
type BusinessRepo struct{ DB *sql.DB }

func NewBusinessRepo(db *sql.DB) *BusinessRepo { return &BusinessRepo{DB: db} }

// Create inserts a business for the given owner and returns the stored row.
func (r *BusinessRepo) Create(ctx context.Context, userID uint64, name string, category *string) (model.Business, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO businesses (user_id, name, category) VALUES (?,?,?)",
		userID, name, category)
	if err != nil {
		return model.Business{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Business{}, err
	}
	return r.getByID(ctx, uint64(id))
}

// ListByUser returns all businesses owned by a user, oldest first.
func (r *BusinessRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Business, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,name,category,created_at FROM businesses WHERE user_id=? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BusinessRepo) getByID(ctx context.Context, id uint64) (model.Business, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,name,category,created_at FROM businesses WHERE id=? LIMIT 1", id)
	var (
		b        model.Business
		category sql.NullString
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &category, &b.CreatedAt); err != nil {
		return model.Business{}, err
	}
	if category.Valid {
		b.Category = &category.String
	}
	return b, nil
}

func scanBusiness(rows *sql.Rows) (model.Business, error) {
	var (
		b        model.Business
		category sql.NullString
	)
	if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &category, &b.CreatedAt); err != nil {
		return model.Business{}, err
	}
	if category.Valid {
		b.Category = &category.String
	}
	return b, nil
}
