package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/domain"
)

// LeaveRepository reads leave balances and recent requests for the chat
// corpus. Leave approval workflows live elsewhere.
type LeaveRepository struct {
	db dbtx
}

func NewLeaveRepository(pool *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{db: pool}
}

// Balance returns the employee's remaining leave days. An employee with no
// balance row has zero days.
func (r *LeaveRepository) Balance(ctx context.Context, employeeID string) (int, error) {
	var balance int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(leave_balance, 0) FROM profiles WHERE id = $1`,
		employeeID,
	).Scan(&balance)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// RecentByEmployee returns the employee's most recent leave requests,
// newest first, capped at limit.
func (r *LeaveRepository) RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.LeaveRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, employee_id, COALESCE(department, ''), from_date, to_date, COALESCE(reason, ''), status
		 FROM leave_requests
		 WHERE employee_id = $1
		 ORDER BY from_date DESC, id
		 LIMIT $2`,
		employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.LeaveRequest
	for rows.Next() {
		var lr domain.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.Department, &lr.FromDate, &lr.ToDate, &lr.Reason, &lr.Status); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *LeaveRepository) Create(ctx context.Context, lr *domain.LeaveRequest) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO leave_requests (id, employee_id, department, from_date, to_date, reason, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		lr.ID, lr.EmployeeID, nullableString(lr.Department), lr.FromDate, lr.ToDate, nullableString(lr.Reason), lr.Status,
	)
	return err
}
