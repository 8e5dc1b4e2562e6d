package authz_test

import (
	"testing"

	"dosrobles-hr/internal/authz"
	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newGate(t *testing.T) authz.Gate {
	t.Helper()
	enforcer, err := authz.NewEnforcer()
	assert.NoError(t, err)
	return authz.NewGate(enforcer)
}

func TestGate_AdminActsOnAnyTarget(t *testing.T) {
	g := newGate(t)
	admin := domain.Identity{SubjectEmployeeID: uuid.New().String(), Role: domain.RoleAdmin}
	otherEmployee := uuid.New().String()

	for _, action := range []authz.Action{
		authz.ActionLeaveCreate,
		authz.ActionLeaveRead,
		authz.ActionLeaveReadAll,
		authz.ActionLeaveUpdate,
		authz.ActionLeaveApprove,
		authz.ActionLeaveReject,
		authz.ActionLeaveCancel,
		authz.ActionLeaveSummary,
		authz.ActionNotificationReadAll,
	} {
		assert.NoError(t, g.CanPerform(admin, action, otherEmployee), action.Name)
	}
}

func TestGate_EmployeeOwnershipBound(t *testing.T) {
	g := newGate(t)
	subject := uuid.New().String()
	employee := domain.Identity{SubjectEmployeeID: subject, Role: domain.RoleEmployee}

	t.Run("allowed on own resources", func(t *testing.T) {
		for _, action := range []authz.Action{
			authz.ActionLeaveCreate,
			authz.ActionLeaveRead,
			authz.ActionLeaveUpdate,
			authz.ActionLeaveCancel,
			authz.ActionLeaveSummary,
		} {
			assert.NoError(t, g.CanPerform(employee, action, subject), action.Name)
		}
	})

	t.Run("denied on someone else's resources", func(t *testing.T) {
		other := uuid.New().String()
		for _, action := range []authz.Action{
			authz.ActionLeaveRead,
			authz.ActionLeaveUpdate,
			authz.ActionLeaveCancel,
			authz.ActionLeaveSummary,
		} {
			err := g.CanPerform(employee, action, other)
			assert.ErrorIs(t, err, apperror.ErrForbidden, action.Name)
		}
	})

	t.Run("approve and reject denied even on own request", func(t *testing.T) {
		assert.ErrorIs(t, g.CanPerform(employee, authz.ActionLeaveApprove, subject), apperror.ErrForbidden)
		assert.ErrorIs(t, g.CanPerform(employee, authz.ActionLeaveReject, subject), apperror.ErrForbidden)
	})

	t.Run("read_all denied", func(t *testing.T) {
		assert.ErrorIs(t, g.CanPerform(employee, authz.ActionLeaveReadAll, ""), apperror.ErrForbidden)
	})
}

func TestGate_InvalidIdentityDenied(t *testing.T) {
	g := newGate(t)

	t.Run("unknown role", func(t *testing.T) {
		id := domain.Identity{SubjectEmployeeID: uuid.New().String(), Role: "manager"}
		assert.ErrorIs(t, g.CanPerform(id, authz.ActionLeaveRead, id.SubjectEmployeeID), apperror.ErrForbidden)
	})

	t.Run("empty subject", func(t *testing.T) {
		id := domain.Identity{Role: domain.RoleAdmin}
		assert.ErrorIs(t, g.CanPerform(id, authz.ActionLeaveRead, ""), apperror.ErrForbidden)
	})
}
