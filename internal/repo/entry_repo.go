package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/LourceDev/3pages/internal/model"
	"github.com/LourceDev/3pages/internal/pkg/dateutil"
	"github.com/LourceDev/3pages/internal/pkg/dbutil"
	appErr "github.com/LourceDev/3pages/internal/pkg/errors"
)

var entryColumns = []string{"user_id", "date", "text", "word_count", "created_at"}

type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Upsert creates the entry or replaces its text and word count in a single
// statement. Concurrent writers to the same (user_id, date) are serialized
// by the primary key; there is no check-then-insert window.
func (r *EntryRepo) Upsert(ctx context.Context, entry *model.Entry) error {
	query, args := dbutil.Finalize(
		`INSERT INTO entries (user_id, date, text, word_count) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO UPDATE SET text = EXCLUDED.text, word_count = EXCLUDED.word_count
		 RETURNING created_at`,
		[]interface{}{entry.UserID, entry.Date, string(entry.Text), entry.WordCount},
	)
	return r.db.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt)
}

func (r *EntryRepo) Get(ctx context.Context, userID int64, date dateutil.Date) (*model.Entry, error) {
	where := map[string]interface{}{"user_id": userID, "date": date}
	sqlStr, args, err := builder.BuildSelect("entries", where, entryColumns)
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
	entry, err := scanEntry(rows)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry if present. Deleting an absent entry is not an
// error; the operation is idempotent.
func (r *EntryRepo) Delete(ctx context.Context, userID int64, date dateutil.Date) error {
	where := map[string]interface{}{"user_id": userID, "date": date}
	sqlStr, args, err := builder.BuildDelete("entries", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *EntryRepo) ListDates(ctx context.Context, userID int64) ([]dateutil.Date, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "date asc",
	}
	sqlStr, args, err := builder.BuildSelect("entries", where, []string{"date"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	dates := make([]dateutil.Date, 0)
	for rows.Next() {
		var date dateutil.Date
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// List pages over all entries of all users, oldest page first. Used by the
// word-count recount job.
func (r *EntryRepo) List(ctx context.Context, offset, limit uint) ([]*model.Entry, error) {
	where := map[string]interface{}{
		"_orderby": "user_id asc, date asc",
		"_limit":   []uint{offset, limit},
	}
	sqlStr, args, err := builder.BuildSelect("entries", where, entryColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *EntryRepo) UpdateWordCount(ctx context.Context, userID int64, date dateutil.Date, wordCount int64) error {
	where := map[string]interface{}{"user_id": userID, "date": date}
	update := map[string]interface{}{"word_count": wordCount}
	sqlStr, args, err := builder.BuildUpdate("entries", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanEntry(rows *sql.Rows) (*model.Entry, error) {
	var entry model.Entry
	if err := rows.Scan(&entry.UserID, &entry.Date, &entry.Text, &entry.WordCount, &entry.CreatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}
