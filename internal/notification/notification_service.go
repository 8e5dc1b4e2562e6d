package notification

import (
	"context"
	"errors"

	"dosrobles-hr/internal/authz"
	"dosrobles-hr/internal/domain"
	notificationerrors "dosrobles-hr/internal/notification/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the read side shared with external callers: everything except
// dispatch. Every operation is scoped to the recipient unless the caller is
// privileged.
//
//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	ListForRecipient(ctx context.Context, identity domain.Identity, recipientID string) ([]NotificationResponse, error)
	ListUnread(ctx context.Context, identity domain.Identity, recipientID string) ([]NotificationResponse, error)
	ListAll(ctx context.Context, identity domain.Identity) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, identity domain.Identity, id string) (NotificationResponse, error)
	MarkAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
	DeleteAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error)
}

type service struct {
	repo   Repository
	gate   authz.Gate
	logger *zap.Logger
}

func NewService(repo Repository, gate authz.Gate, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, gate: gate, logger: l}
}

func (s *service) ListForRecipient(ctx context.Context, identity domain.Identity, recipientID string) ([]NotificationResponse, error) {
	if err := s.gate.CanPerform(identity, authz.ActionNotificationRead, recipientID); err != nil {
		return nil, err
	}

	list, err := s.repo.FindByRecipient(ctx, recipientID)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("recipient_id", recipientID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) ListUnread(ctx context.Context, identity domain.Identity, recipientID string) ([]NotificationResponse, error) {
	if err := s.gate.CanPerform(identity, authz.ActionNotificationRead, recipientID); err != nil {
		return nil, err
	}

	list, err := s.repo.FindUnreadByRecipient(ctx, recipientID)
	if err != nil {
		s.logger.Error("list unread notifications failed", zap.String("recipient_id", recipientID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) ListAll(ctx context.Context, identity domain.Identity) ([]NotificationResponse, error) {
	if err := s.gate.CanPerform(identity, authz.ActionNotificationReadAll, ""); err != nil {
		return nil, err
	}

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list all notifications failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) MarkRead(ctx context.Context, identity domain.Identity, id string) (NotificationResponse, error) {
	n, err := s.loadOwned(ctx, identity, id)
	if err != nil {
		return NotificationResponse{}, err
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		s.logger.Error("mark read failed", zap.String("notification_id", id), zap.Error(err))
		return NotificationResponse{}, err
	}

	n.Read = true
	return mapToResponse(*n), nil
}

func (s *service) MarkAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error) {
	if err := s.gate.CanPerform(identity, authz.ActionNotificationManage, recipientID); err != nil {
		return 0, err
	}

	updated, err := s.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		s.logger.Error("mark all read failed", zap.String("recipient_id", recipientID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("notifications marked read",
		zap.String("recipient_id", recipientID),
		zap.Int64("updated", updated),
	)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if _, err := s.loadOwned(ctx, identity, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete notification failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) DeleteAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error) {
	if err := s.gate.CanPerform(identity, authz.ActionNotificationManage, recipientID); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteAllRead(ctx, recipientID)
	if err != nil {
		s.logger.Error("delete all read failed", zap.String("recipient_id", recipientID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("read notifications deleted",
		zap.String("recipient_id", recipientID),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

// loadOwned fetches a notification and enforces that the caller is its
// recipient (or privileged). The ownership check runs after the fetch, so an
// unauthorized caller can tell an existing id from a missing one.
func (s *service) loadOwned(ctx context.Context, identity domain.Identity, id string) (*Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationerrors.ErrNotificationNotFound
		}
		return nil, err
	}

	if err := s.gate.CanPerform(identity, authz.ActionNotificationManage, n.RecipientEmployeeID.String()); err != nil {
		return nil, err
	}
	return n, nil
}
