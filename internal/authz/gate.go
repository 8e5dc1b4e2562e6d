package authz

import (
	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Action is one entry of the closed action catalogue. OwnershipBound actions
// additionally require the caller to own the target resource unless the role
// is privileged.
type Action struct {
	Resource       string
	Name           string
	OwnershipBound bool
}

var (
	ActionLeaveCreate  = Action{Resource: "leave", Name: "create", OwnershipBound: true}
	ActionLeaveRead    = Action{Resource: "leave", Name: "read", OwnershipBound: true}
	ActionLeaveReadAll = Action{Resource: "leave", Name: "read_all"}
	ActionLeaveUpdate  = Action{Resource: "leave", Name: "update", OwnershipBound: true}
	ActionLeaveApprove = Action{Resource: "leave", Name: "approve"}
	ActionLeaveReject  = Action{Resource: "leave", Name: "reject"}
	ActionLeaveCancel  = Action{Resource: "leave", Name: "cancel", OwnershipBound: true}
	ActionLeaveSummary = Action{Resource: "leave", Name: "summary", OwnershipBound: true}

	ActionNotificationRead    = Action{Resource: "notification", Name: "read", OwnershipBound: true}
	ActionNotificationReadAll = Action{Resource: "notification", Name: "read_all"}
	ActionNotificationManage  = Action{Resource: "notification", Name: "manage", OwnershipBound: true}
)

//go:generate mockgen -source=gate.go -destination=mock/gate_mock.go -package=mock
type Gate interface {
	CanPerform(identity domain.Identity, action Action, targetEmployeeID string) error
}

type gate struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewGate(enforcer *casbin.Enforcer, logger ...*zap.Logger) Gate {
	l := zap.L().Named("authz.gate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.gate")
	}
	return &gate{enforcer: enforcer, logger: l}
}

// CanPerform allows or denies. Denial is always an explicit FORBIDDEN error,
// never a silent no-op.
func (g *gate) CanPerform(identity domain.Identity, action Action, targetEmployeeID string) error {
	if !identity.Role.Valid() || identity.SubjectEmployeeID == "" {
		return apperror.ErrForbidden
	}

	allowed, err := g.enforcer.Enforce(string(identity.Role), action.Resource, action.Name)
	if err != nil {
		g.logger.Error("enforce failed",
			zap.String("role", string(identity.Role)),
			zap.String("resource", action.Resource),
			zap.String("action", action.Name),
			zap.Error(err),
		)
		return apperror.ErrInternal
	}
	if !allowed {
		g.logger.Warn("action denied by role policy",
			zap.String("role", string(identity.Role)),
			zap.String("resource", action.Resource),
			zap.String("action", action.Name),
		)
		return apperror.ErrForbidden
	}

	if action.OwnershipBound && !identity.Role.Privileged() && !identity.Owns(targetEmployeeID) {
		g.logger.Warn("action denied by ownership",
			zap.String("subject", identity.SubjectEmployeeID),
			zap.String("target", targetEmployeeID),
			zap.String("action", action.Name),
		)
		return apperror.ErrForbidden
	}

	return nil
}
