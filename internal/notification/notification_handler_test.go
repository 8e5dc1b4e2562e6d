package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/notification"
	notificationerrors "dosrobles-hr/internal/notification/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	listForRecipientFn func(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error)
	listUnreadFn       func(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error)
	listAllFn          func(ctx context.Context, identity domain.Identity) ([]notification.NotificationResponse, error)
	markReadFn         func(ctx context.Context, identity domain.Identity, id string) (notification.NotificationResponse, error)
	markAllReadFn      func(ctx context.Context, identity domain.Identity, recipientID string) (int64, error)
	deleteFn           func(ctx context.Context, identity domain.Identity, id string) error
	deleteAllReadFn    func(ctx context.Context, identity domain.Identity, recipientID string) (int64, error)
}

func (f *fakeService) ListForRecipient(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error) {
	return f.listForRecipientFn(ctx, identity, recipientID)
}
func (f *fakeService) ListUnread(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error) {
	return f.listUnreadFn(ctx, identity, recipientID)
}
func (f *fakeService) ListAll(ctx context.Context, identity domain.Identity) ([]notification.NotificationResponse, error) {
	return f.listAllFn(ctx, identity)
}
func (f *fakeService) MarkRead(ctx context.Context, identity domain.Identity, id string) (notification.NotificationResponse, error) {
	return f.markReadFn(ctx, identity, id)
}
func (f *fakeService) MarkAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error) {
	return f.markAllReadFn(ctx, identity, recipientID)
}
func (f *fakeService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	return f.deleteFn(ctx, identity, id)
}
func (f *fakeService) DeleteAllRead(ctx context.Context, identity domain.Identity, recipientID string) (int64, error) {
	return f.deleteAllReadFn(ctx, identity, recipientID)
}

func TestHandler_ListDefaultsToSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.NewString()

	svc := &fakeService{
		listForRecipientFn: func(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error) {
			assert.Equal(t, employeeID, recipientID)
			return []notification.NotificationResponse{{ID: uuid.NewString()}}, nil
		},
	}
	h := notification.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Set("role", string(domain.RoleEmployee))
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestHandler_ListHonorsExplicitRecipient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.NewString()
	targetID := uuid.NewString()

	svc := &fakeService{
		listForRecipientFn: func(ctx context.Context, identity domain.Identity, recipientID string) ([]notification.NotificationResponse, error) {
			assert.Equal(t, targetID, recipientID)
			assert.Equal(t, domain.RoleAdmin, identity.Role)
			return nil, nil
		},
	}
	h := notification.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", adminID)
	c.Set("role", string(domain.RoleAdmin))
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications?recipient_id="+targetID, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkReadErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markReadFn: func(ctx context.Context, identity domain.Identity, id string) (notification.NotificationResponse, error) {
			return notification.NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		},
	}
	h := notification.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.NewString())
	c.Set("role", string(domain.RoleEmployee))
	c.Request = httptest.NewRequest(http.MethodPatch, "/notifications/x/read", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}
	h.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.NewString()

	svc := &fakeService{
		markAllReadFn: func(ctx context.Context, identity domain.Identity, recipientID string) (int64, error) {
			assert.Equal(t, employeeID, recipientID)
			return 3, nil
		},
	}
	h := notification.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Set("role", string(domain.RoleEmployee))
	c.Request = httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil)
	h.MarkAllRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":3`)
}
