package notification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id string) (*Notification, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]Notification, error)
	FindUnreadByRecipient(ctx context.Context, recipientID string) ([]Notification, error)
	FindAll(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteAllRead(ctx context.Context, recipientID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).
		First(&n, "id = ?", id).Error
	return &n, err
}

func (r *repository) FindByRecipient(ctx context.Context, recipientID string) ([]Notification, error) {
	var list []Notification
	err := r.db.WithContext(ctx).
		Where("recipient_employee_id = ?", recipientID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindUnreadByRecipient(ctx context.Context, recipientID string) ([]Notification, error) {
	var list []Notification
	err := r.db.WithContext(ctx).
		Where("recipient_employee_id = ?", recipientID).
		Where("read = ?", false).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindAll(ctx context.Context) ([]Notification, error) {
	var list []Notification
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// MarkRead touches only the read column; everything else is immutable.
func (r *repository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_employee_id = ?", recipientID).
		Where("read = ?", false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Notification{}, "id = ?", id).Error
}

func (r *repository) DeleteAllRead(ctx context.Context, recipientID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("recipient_employee_id = ?", recipientID).
		Where("read = ?", true).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}
