package notification

import (
	"context"

	notificationerrors "dosrobles-hr/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Message is the dispatcher input. RecipientID is set per delivery; the other
// fields are shared across a broadcast.
type Message struct {
	RecipientID   string
	Type          string
	Subject       string
	Body          string
	SenderID      *string
	Priority      string // defaults to media when empty
	ReferenceID   *string
	ReferenceType *string
}

// DeliveryResult is the outcome of one recipient of a broadcast.
type DeliveryResult struct {
	RecipientID    string `json:"recipient_id"`
	NotificationID string `json:"notification_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

//go:generate mockgen -source=notification_dispatcher.go -destination=mock/notification_dispatcher_mock.go -package=mock
type Dispatcher interface {
	NotifyOne(ctx context.Context, msg Message) (NotificationResponse, error)
	NotifyBroadcast(ctx context.Context, recipientIDs []string, msg Message) ([]DeliveryResult, error)
}

type dispatcher struct {
	repo   Repository
	logger *zap.Logger
}

func NewDispatcher(repo Repository, logger ...*zap.Logger) Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &dispatcher{repo: repo, logger: l}
}

func (d *dispatcher) NotifyOne(ctx context.Context, msg Message) (NotificationResponse, error) {
	n, err := buildNotification(msg)
	if err != nil {
		d.logger.Warn("notify validation failed",
			zap.String("recipient_id", msg.RecipientID),
			zap.String("type", msg.Type),
			zap.Error(err),
		)
		return NotificationResponse{}, err
	}

	if err := d.repo.Create(ctx, n); err != nil {
		d.logger.Error("notify persist failed",
			zap.String("recipient_id", msg.RecipientID),
			zap.String("type", msg.Type),
			zap.Error(err),
		)
		return NotificationResponse{}, err
	}

	d.logger.Info("notification written",
		zap.String("notification_id", n.ID.String()),
		zap.String("recipient_id", msg.RecipientID),
		zap.String("type", msg.Type),
	)
	return mapToResponse(*n), nil
}

// NotifyBroadcast issues one NotifyOne per recipient. It is deliberately not
// transactional: every recipient is attempted even after a failure, and a
// partial fan-out is surfaced as a single aggregate error alongside the
// per-recipient results.
func (d *dispatcher) NotifyBroadcast(ctx context.Context, recipientIDs []string, msg Message) ([]DeliveryResult, error) {
	results := make([]DeliveryResult, 0, len(recipientIDs))
	failed := 0

	for _, recipientID := range recipientIDs {
		per := msg
		per.RecipientID = recipientID

		resp, err := d.NotifyOne(ctx, per)
		if err != nil {
			failed++
			results = append(results, DeliveryResult{
				RecipientID: recipientID,
				Error:       err.Error(),
			})
			continue
		}
		results = append(results, DeliveryResult{
			RecipientID:    recipientID,
			NotificationID: resp.ID,
		})
	}

	if failed > 0 {
		d.logger.Error("broadcast partially failed",
			zap.Int("recipients", len(recipientIDs)),
			zap.Int("failed", failed),
			zap.String("type", msg.Type),
		)
		return results, notificationerrors.ErrBroadcastPartialFailure
	}

	return results, nil
}

func buildNotification(msg Message) (*Notification, error) {
	if msg.RecipientID == "" {
		return nil, notificationerrors.ErrRecipientRequired
	}
	recipientUUID, err := uuid.Parse(msg.RecipientID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidRecipientID
	}
	if msg.Type == "" {
		return nil, notificationerrors.ErrTypeRequired
	}
	if !validType(msg.Type) {
		return nil, notificationerrors.ErrInvalidType
	}
	if msg.Subject == "" {
		return nil, notificationerrors.ErrSubjectRequired
	}
	if msg.Body == "" {
		return nil, notificationerrors.ErrBodyRequired
	}

	priority := msg.Priority
	if priority == "" {
		priority = PriorityMedia
	}
	if !validPriority(priority) {
		return nil, notificationerrors.ErrInvalidPriority
	}

	n := &Notification{
		ID:                  uuid.New(),
		RecipientEmployeeID: recipientUUID,
		Type:                msg.Type,
		Subject:             msg.Subject,
		Body:                msg.Body,
		Priority:            priority,
		ReferenceID:         msg.ReferenceID,
		ReferenceType:       msg.ReferenceType,
	}

	if msg.SenderID != nil && *msg.SenderID != "" {
		senderUUID, err := uuid.Parse(*msg.SenderID)
		if err != nil {
			return nil, notificationerrors.ErrInvalidSenderID
		}
		n.SenderEmployeeID = &senderUUID
	}

	return n, nil
}
