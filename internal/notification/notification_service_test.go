package notification

import (
	"context"
	"testing"

	"dosrobles-hr/internal/authz"
	"dosrobles-hr/internal/domain"
	notificationerrors "dosrobles-hr/internal/notification/errors"
	"dosrobles-hr/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestGate(t *testing.T) authz.Gate {
	t.Helper()
	enforcer, err := authz.NewEnforcer()
	assert.NoError(t, err)
	return authz.NewGate(enforcer)
}

func TestServiceRecipientScope(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)
	ownerID := uuid.NewString()
	otherID := uuid.NewString()

	repo := &fakeRepo{
		FindByRecipientFn: func(ctx context.Context, recipientID string) ([]Notification, error) {
			return []Notification{
				{ID: uuid.New(), RecipientEmployeeID: uuid.MustParse(recipientID), Type: TypeMensaje, Subject: "s", Body: "b", Priority: PriorityBaja},
			}, nil
		},
	}
	svc := NewService(repo, gate)

	owner := domain.Identity{SubjectEmployeeID: ownerID, Role: domain.RoleEmployee}
	admin := domain.Identity{SubjectEmployeeID: otherID, Role: domain.RoleAdmin}

	t.Run("recipient reads own inbox", func(t *testing.T) {
		list, err := svc.ListForRecipient(ctx, owner, ownerID)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, ownerID, list[0].RecipientEmployeeID)
	})

	t.Run("employee cannot read another inbox", func(t *testing.T) {
		_, err := svc.ListForRecipient(ctx, owner, otherID)
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("admin reads any inbox", func(t *testing.T) {
		_, err := svc.ListForRecipient(ctx, admin, ownerID)
		assert.NoError(t, err)
	})

	t.Run("only admin lists across recipients", func(t *testing.T) {
		_, err := svc.ListAll(ctx, owner)
		assert.ErrorIs(t, err, apperror.ErrForbidden)

		_, err = svc.ListAll(ctx, admin)
		assert.NoError(t, err)
	})
}

func TestServiceMarkRead(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)
	ownerID := uuid.NewString()
	notifID := uuid.New()

	stored := &Notification{
		ID:                  notifID,
		RecipientEmployeeID: uuid.MustParse(ownerID),
		Type:                TypeAlerta,
		Subject:             "s",
		Body:                "b",
		Priority:            PriorityAlta,
	}

	marked := ""
	repo := &fakeRepo{
		FindByIDFn: func(ctx context.Context, id string) (*Notification, error) {
			return stored, nil
		},
		MarkReadFn: func(ctx context.Context, id string) error {
			marked = id
			return nil
		},
	}
	svc := NewService(repo, gate)
	owner := domain.Identity{SubjectEmployeeID: ownerID, Role: domain.RoleEmployee}

	resp, err := svc.MarkRead(ctx, owner, notifID.String())
	assert.NoError(t, err)
	assert.Equal(t, notifID.String(), marked)
	assert.True(t, resp.Read)

	t.Run("stranger is rejected", func(t *testing.T) {
		stranger := domain.Identity{SubjectEmployeeID: uuid.NewString(), Role: domain.RoleEmployee}
		_, err := svc.MarkRead(ctx, stranger, notifID.String())
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("missing notification", func(t *testing.T) {
		repo.FindByIDFn = nil // falls back to record-not-found
		_, err := svc.MarkRead(ctx, owner, uuid.NewString())
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}

func TestServiceBulkOps(t *testing.T) {
	ctx := context.Background()
	gate := newTestGate(t)
	ownerID := uuid.NewString()
	owner := domain.Identity{SubjectEmployeeID: ownerID, Role: domain.RoleEmployee}

	repo := &fakeRepo{
		MarkAllReadFn: func(ctx context.Context, recipientID string) (int64, error) {
			assert.Equal(t, ownerID, recipientID)
			return 4, nil
		},
		DeleteAllReadFn: func(ctx context.Context, recipientID string) (int64, error) {
			return 2, nil
		},
	}
	svc := NewService(repo, gate)

	updated, err := svc.MarkAllRead(ctx, owner, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), updated)

	deleted, err := svc.DeleteAllRead(ctx, owner, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = svc.MarkAllRead(ctx, owner, uuid.NewString())
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
