package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Filter is the repository-level query shape; the service decides what goes
// in it based on the caller's role.
type Filter struct {
	EmployeeID string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// SummaryRow is one (status, count, days) aggregate line for an employee.
type SummaryRow struct {
	Status string
	Count  int64
	Days   int64
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindFiltered(ctx context.Context, f Filter) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	// TransitionStatus applies updates only if the row's status is still one
	// of fromStatuses, reporting whether a row was changed. This is the guard
	// against two resolvers racing on the same request.
	TransitionStatus(ctx context.Context, id string, fromStatuses []string, updates map[string]any) (bool, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	Summarize(ctx context.Context, employeeID string) ([]SummaryRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindFiltered(ctx context.Context, f Filter) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).Model(&LeaveRequest{})

	if f.EmployeeID != "" {
		db = db.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.DateFrom != nil {
		db = db.Where("end_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("start_date <= ?", *f.DateTo)
	}

	var leaves []LeaveRequest
	err := db.Order("requested_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) TransitionStatus(ctx context.Context, id string, fromStatuses []string, updates map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Where("status IN ?", fromStatuses).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// HasOverlappingPeriod treats ranges as closed whole-day intervals: a request
// ending the day another begins still counts as an overlap.
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPendiente, StatusAprobado}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) Summarize(ctx context.Context, employeeID string) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_days), 0) AS days").
		Where("employee_id = ?", employeeID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}
