// Package store keeps a local log of relayed form submissions so the team
// can see what came in even when the spreadsheet or mail provider failed.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetra/site/db"
)

const (
	StatusPending = "pending"
	StatusRelayed = "relayed"
	StatusFailed  = "failed"
)

type Record struct {
	ID        string
	FormType  string
	Name      string
	Email     string
	Status    string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Log implements the submission recorder on top of the db package.
type Log struct{}

func (Log) SaveSubmission(ctx context.Context, r Record) error {
	return SaveSubmission(ctx, r)
}

func (Log) UpdateStatus(ctx context.Context, id, status, errMsg string) error {
	return UpdateStatus(ctx, id, status, errMsg)
}

// SaveSubmission inserts a new record
func SaveSubmission(ctx context.Context, r Record) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	_, err := db.Exec(ctx,
		`INSERT INTO Submission (id, form_type, name, email, status, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.FormType, r.Name, r.Email, r.Status, r.Error, r.CreatedAt, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", r.ID, err)
	}
	return nil
}

// UpdateStatus sets the relay status of a submission
func UpdateStatus(ctx context.Context, id, status, errMsg string) error {
	res, err := db.Exec(ctx,
		`UPDATE Submission SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		status, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update submission %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// RecentSubmissions returns the newest records first
func RecentSubmissions(ctx context.Context, limit int) ([]Record, error) {
	rows, err := db.Query(ctx,
		`SELECT id, form_type, name, email, status, error, created_at, updated_at
		 FROM Submission ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.FormType, &r.Name, &r.Email, &r.Status, &r.Error, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByStatus returns the number of submissions per status
func CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := db.Query(ctx, `SELECT status, COUNT(*) FROM Submission GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
