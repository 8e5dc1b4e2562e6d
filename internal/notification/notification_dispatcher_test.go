package notification

import (
	"context"
	"errors"
	"testing"

	notificationerrors "dosrobles-hr/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	CreateFn                func(ctx context.Context, n *Notification) error
	FindByIDFn              func(ctx context.Context, id string) (*Notification, error)
	FindByRecipientFn       func(ctx context.Context, recipientID string) ([]Notification, error)
	FindUnreadByRecipientFn func(ctx context.Context, recipientID string) ([]Notification, error)
	FindAllFn               func(ctx context.Context) ([]Notification, error)
	MarkReadFn              func(ctx context.Context, id string) error
	MarkAllReadFn           func(ctx context.Context, recipientID string) (int64, error)
	DeleteFn                func(ctx context.Context, id string) error
	DeleteAllReadFn         func(ctx context.Context, recipientID string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, n *Notification) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, n)
	}
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Notification, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByRecipient(ctx context.Context, recipientID string) ([]Notification, error) {
	if f.FindByRecipientFn != nil {
		return f.FindByRecipientFn(ctx, recipientID)
	}
	return nil, nil
}

func (f *fakeRepo) FindUnreadByRecipient(ctx context.Context, recipientID string) ([]Notification, error) {
	if f.FindUnreadByRecipientFn != nil {
		return f.FindUnreadByRecipientFn(ctx, recipientID)
	}
	return nil, nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Notification, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id string) error {
	if f.MarkReadFn != nil {
		return f.MarkReadFn(ctx, id)
	}
	return nil
}

func (f *fakeRepo) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	if f.MarkAllReadFn != nil {
		return f.MarkAllReadFn(ctx, recipientID)
	}
	return 0, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepo) DeleteAllRead(ctx context.Context, recipientID string) (int64, error) {
	if f.DeleteAllReadFn != nil {
		return f.DeleteAllReadFn(ctx, recipientID)
	}
	return 0, nil
}

func TestNotifyOne(t *testing.T) {
	ctx := context.Background()
	recipientID := uuid.NewString()
	senderID := uuid.NewString()

	t.Run("persists with defaulted priority", func(t *testing.T) {
		repo := &fakeRepo{}
		var stored *Notification
		repo.CreateFn = func(ctx context.Context, n *Notification) error {
			stored = n
			return nil
		}

		d := NewDispatcher(repo)
		refID := uuid.NewString()
		refType := ReferenceTypeLeaveRequest

		resp, err := d.NotifyOne(ctx, Message{
			RecipientID:   recipientID,
			Type:          TypeAusencia,
			Subject:       "Nueva solicitud de licencia",
			Body:          "detalle",
			SenderID:      &senderID,
			ReferenceID:   &refID,
			ReferenceType: &refType,
		})

		assert.NoError(t, err)
		assert.Equal(t, PriorityMedia, stored.Priority)
		assert.Equal(t, recipientID, stored.RecipientEmployeeID.String())
		if assert.NotNil(t, stored.SenderEmployeeID) {
			assert.Equal(t, senderID, stored.SenderEmployeeID.String())
		}
		if assert.NotNil(t, stored.ReferenceID) {
			assert.Equal(t, refID, *stored.ReferenceID)
		}
		assert.Equal(t, stored.ID.String(), resp.ID)
		assert.False(t, resp.Read)
	})

	t.Run("validation", func(t *testing.T) {
		d := NewDispatcher(&fakeRepo{})

		cases := []struct {
			name string
			msg  Message
			want error
		}{
			{"missing recipient", Message{Type: TypeMensaje, Subject: "s", Body: "b"}, notificationerrors.ErrRecipientRequired},
			{"bad recipient id", Message{RecipientID: "emp-1", Type: TypeMensaje, Subject: "s", Body: "b"}, notificationerrors.ErrInvalidRecipientID},
			{"missing type", Message{RecipientID: recipientID, Subject: "s", Body: "b"}, notificationerrors.ErrTypeRequired},
			{"unknown type", Message{RecipientID: recipientID, Type: "recordatorio", Subject: "s", Body: "b"}, notificationerrors.ErrInvalidType},
			{"missing subject", Message{RecipientID: recipientID, Type: TypeMensaje, Body: "b"}, notificationerrors.ErrSubjectRequired},
			{"missing body", Message{RecipientID: recipientID, Type: TypeMensaje, Subject: "s"}, notificationerrors.ErrBodyRequired},
			{"unknown priority", Message{RecipientID: recipientID, Type: TypeMensaje, Subject: "s", Body: "b", Priority: "urgente"}, notificationerrors.ErrInvalidPriority},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := d.NotifyOne(ctx, tc.msg)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestNotifyBroadcast(t *testing.T) {
	ctx := context.Background()
	recipientA := uuid.NewString()
	recipientB := uuid.NewString()
	recipientC := uuid.NewString()

	msg := Message{Type: TypeAusencia, Subject: "asunto", Body: "cuerpo"}

	t.Run("delivers to every recipient", func(t *testing.T) {
		repo := &fakeRepo{}
		var recipients []string
		repo.CreateFn = func(ctx context.Context, n *Notification) error {
			recipients = append(recipients, n.RecipientEmployeeID.String())
			return nil
		}

		d := NewDispatcher(repo)
		results, err := d.NotifyBroadcast(ctx, []string{recipientA, recipientB}, msg)

		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.ElementsMatch(t, []string{recipientA, recipientB}, recipients)
		for _, r := range results {
			assert.NotEmpty(t, r.NotificationID)
			assert.Empty(t, r.Error)
		}
	})

	t.Run("keeps going after a failed recipient", func(t *testing.T) {
		repo := &fakeRepo{}
		repo.CreateFn = func(ctx context.Context, n *Notification) error {
			if n.RecipientEmployeeID.String() == recipientB {
				return errors.New("insert failed")
			}
			return nil
		}

		d := NewDispatcher(repo)
		results, err := d.NotifyBroadcast(ctx, []string{recipientA, recipientB, recipientC}, msg)

		assert.ErrorIs(t, err, notificationerrors.ErrBroadcastPartialFailure)
		assert.Len(t, results, 3)

		byRecipient := map[string]DeliveryResult{}
		for _, r := range results {
			byRecipient[r.RecipientID] = r
		}
		assert.Empty(t, byRecipient[recipientA].Error)
		assert.NotEmpty(t, byRecipient[recipientB].Error)
		assert.Empty(t, byRecipient[recipientB].NotificationID)
		assert.Empty(t, byRecipient[recipientC].Error)
	})
}
