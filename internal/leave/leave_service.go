package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dosrobles-hr/internal/authz"
	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/employee"
	"dosrobles-hr/internal/events"
	leaveerrors "dosrobles-hr/internal/leave/errors"
	"dosrobles-hr/internal/messaging/kafka"
	"dosrobles-hr/internal/notification"
	"dosrobles-hr/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, identity domain.Identity, filters ListFilters) ([]LeaveResponse, error)
	GetByID(ctx context.Context, identity domain.Identity, id string) (LeaveResponse, error)
	Create(ctx context.Context, identity domain.Identity, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, identity domain.Identity, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, identity domain.Identity, id, comment string) (LeaveResponse, error)
	Reject(ctx context.Context, identity domain.Identity, id, resolverID, comment string) (LeaveResponse, error)
	Cancel(ctx context.Context, identity domain.Identity, id string) (LeaveResponse, error)
	Summary(ctx context.Context, identity domain.Identity, employeeID string) (SummaryResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	gate       authz.Gate
	directory  employee.Directory
	dispatcher notification.Dispatcher
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	gate authz.Gate,
	directory employee.Directory,
	dispatcher notification.Dispatcher,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, gate, directory, dispatcher, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	gate authz.Gate,
	directory employee.Directory,
	dispatcher notification.Dispatcher,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		gate:       gate,
		directory:  directory,
		dispatcher: dispatcher,
		outbox:     outboxRepo,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, identity domain.Identity, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", identity.SubjectEmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	// The owner is always the caller; a payload can never create a request
	// on someone else's behalf.
	if err := s.gate.CanPerform(identity, authz.ActionLeaveCreate, identity.SubjectEmployeeID); err != nil {
		return LeaveResponse{}, err
	}

	employeeUUID, startDate, endDate, err := validateCreateRequest(identity.SubjectEmployeeID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	exists, err := s.directory.Exists(ctx, identity.SubjectEmployeeID)
	if err != nil {
		s.logger.Error("create leave directory check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, identity.SubjectEmployeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", identity.SubjectEmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	now := time.Now().UTC()
	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveType:   req.LeaveType,
		RequestedAt: now,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   totalDaysBetween(startDate, endDate),
		Reason:      req.Reason,
		Description: req.Description,
		Status:      StatusPendiente,
		Active:      true,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveRequestedEvent{
			EventType:  "leave_requested",
			RequestID:  rid,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			LeaveType:  l.LeaveType,
			StartDate:  l.StartDate.Format("2006-01-02"),
			EndDate:    l.EndDate.Format("2006-01-02"),
			TotalDays:  l.TotalDays,
			OccurredAt: now,
		}
		if err := s.queueOutbox(ctx, tx, rid, l.ID.String(), event.EventType, events.LeaveRequestedTopic, event); err != nil {
			s.logger.Error("create leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", identity.SubjectEmployeeID),
	)

	if err := s.broadcastRequested(ctx, identity, l); err != nil {
		return LeaveResponse{}, err
	}

	return mapToResponse(*l), nil
}

// broadcastRequested fans the new request out to every active admin. It runs
// after the commit: the request stays persisted even when the fan-out fails,
// and a partial fan-out is reported as the operation's error.
func (s *service) broadcastRequested(ctx context.Context, identity domain.Identity, l *LeaveRequest) error {
	adminIDs, err := s.directory.AdminIDs(ctx)
	if err != nil {
		s.logger.Error("create leave admin lookup failed", zap.Error(err))
		return err
	}
	if len(adminIDs) == 0 {
		return nil
	}

	name, err := s.directory.DisplayName(ctx, identity.SubjectEmployeeID)
	if err != nil {
		s.logger.Warn("create leave display name lookup failed",
			zap.String("employee_id", identity.SubjectEmployeeID),
			zap.Error(err),
		)
		name = identity.SubjectEmployeeID
	}

	leaveID := l.ID.String()
	refType := notification.ReferenceTypeLeaveRequest
	sender := identity.SubjectEmployeeID
	msg := notification.Message{
		Type:    notification.TypeAusencia,
		Subject: "Nueva solicitud de licencia",
		Body: fmt.Sprintf("%s solicitó una licencia (%s) del %s al %s, %d días en total.",
			name, l.LeaveType, l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"), l.TotalDays),
		SenderID:      &sender,
		ReferenceID:   &leaveID,
		ReferenceType: &refType,
	}

	results, err := s.dispatcher.NotifyBroadcast(ctx, adminIDs, msg)
	if err != nil {
		delivered := 0
		for _, r := range results {
			if r.Error == "" {
				delivered++
			}
		}
		s.logger.Error("create leave broadcast incomplete",
			zap.String("leave_id", leaveID),
			zap.Int("recipients", len(adminIDs)),
			zap.Int("delivered", delivered),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) List(ctx context.Context, identity domain.Identity, filters ListFilters) ([]LeaveResponse, error) {
	f := Filter{Status: filters.Status}

	if filters.Status != "" && !validStatus(filters.Status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	if filters.DateFrom != "" {
		from, err := parseDate(filters.DateFrom)
		if err != nil {
			return nil, err
		}
		f.DateFrom = &from
	}
	if filters.DateTo != "" {
		to, err := parseDate(filters.DateTo)
		if err != nil {
			return nil, err
		}
		f.DateTo = &to
	}

	// Non-privileged callers only ever see their own rows, whatever filters
	// they send. A privileged caller sees their own unless they ask for all.
	action := authz.ActionLeaveRead
	target := identity.SubjectEmployeeID
	if identity.Role.Privileged() && filters.All {
		action = authz.ActionLeaveReadAll
		target = ""
		f.EmployeeID = filters.EmployeeID
	} else {
		f.EmployeeID = identity.SubjectEmployeeID
	}

	if err := s.gate.CanPerform(identity, action, target); err != nil {
		return nil, err
	}

	leaves, err := s.repo.FindFiltered(ctx, f)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, identity domain.Identity, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.gate.CanPerform(identity, authz.ActionLeaveRead, l.EmployeeID.String()); err != nil {
		return LeaveResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, identity domain.Identity, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", identity.SubjectEmployeeID),
	)

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.gate.CanPerform(identity, authz.ActionLeaveUpdate, l.EmployeeID.String()); err != nil {
		return LeaveResponse{}, err
	}

	if l.Status != StatusPendiente {
		return LeaveResponse{}, leaveerrors.ErrNotEditable
	}

	if req.LeaveType != nil {
		if !validLeaveType(*req.LeaveType) {
			return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
		}
		l.LeaveType = *req.LeaveType
	}

	startDate, endDate := l.StartDate, l.EndDate
	datesChanged := req.StartDate != nil || req.EndDate != nil
	if req.StartDate != nil {
		startDate, err = parseDate(*req.StartDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	if req.EndDate != nil {
		endDate, err = parseDate(*req.EndDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if datesChanged {
		excludeID := l.ID.String()
		overlap, err := qtx.HasOverlappingPeriod(ctx, l.EmployeeID.String(), startDate, endDate, &excludeID)
		if err != nil {
			s.logger.Error("update leave overlap check failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if overlap {
			return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
		l.StartDate = startDate
		l.EndDate = endDate
		l.TotalDays = totalDaysBetween(startDate, endDate)
	}

	if req.Reason != nil {
		l.Reason = *req.Reason
	}
	if req.Description != nil {
		l.Description = *req.Description
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, identity domain.Identity, id, comment string) (LeaveResponse, error) {
	return s.resolve(ctx, identity, id, StatusAprobado, comment)
}

// Reject records the authenticated caller as resolver; the resolver_id wire
// field is accepted for compatibility and ignored.
func (s *service) Reject(ctx context.Context, identity domain.Identity, id, resolverID, comment string) (LeaveResponse, error) {
	return s.resolve(ctx, identity, id, StatusRechazado, comment)
}

func (s *service) resolve(ctx context.Context, identity domain.Identity, id, targetStatus, comment string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("resolve leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("resolver_id", identity.SubjectEmployeeID),
		zap.String("target_status", targetStatus),
	)

	action := authz.ActionLeaveApprove
	if targetStatus == StatusRechazado {
		action = authz.ActionLeaveReject
	}
	if err := s.gate.CanPerform(identity, action, ""); err != nil {
		return LeaveResponse{}, err
	}

	resolverUUID, err := uuid.Parse(identity.SubjectEmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !canTransition(l.Status, targetStatus) {
		s.logger.Warn("resolve leave invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrNotResolvable
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"status":           targetStatus,
		"resolver_id":      resolverUUID,
		"resolved_at":      now,
		"resolver_comment": comment,
	}
	if targetStatus == StatusRechazado {
		updates["active"] = false
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Guarded write: the row must still be pending at commit time. A second
	// resolver racing this one gets a state error, not a silent overwrite.
	changed, err := qtx.TransitionStatus(ctx, id, []string{StatusPendiente}, updates)
	if err != nil {
		s.logger.Error("resolve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !changed {
		return LeaveResponse{}, leaveerrors.ErrNotResolvable
	}

	if s.outbox != nil {
		eventType := events.LeaveApprovedEventType
		if targetStatus == StatusRechazado {
			eventType = events.LeaveRejectedEventType
		}
		event := events.LeaveResolvedEvent{
			EventType:  eventType,
			RequestID:  rid,
			LeaveID:    id,
			EmployeeID: l.EmployeeID.String(),
			ResolverID: identity.SubjectEmployeeID,
			Status:     targetStatus,
			OccurredAt: now,
		}
		if err := s.queueOutbox(ctx, tx, rid, id, eventType, events.LeaveResolvedTopic, event); err != nil {
			s.logger.Error("resolve leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = targetStatus
	l.ResolverID = &resolverUUID
	l.ResolvedAt = &now
	l.ResolverComment = comment
	if targetStatus == StatusRechazado {
		l.Active = false
	}

	s.logger.Info("resolve leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)

	if err := s.notifyResolved(ctx, identity, l); err != nil {
		return LeaveResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) notifyResolved(ctx context.Context, identity domain.Identity, l *LeaveRequest) error {
	notifType := notification.TypeAprobacion
	subject := "Solicitud de licencia aprobada"
	body := fmt.Sprintf("Tu solicitud de licencia del %s al %s fue aprobada.",
		l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"))
	if l.Status == StatusRechazado {
		notifType = notification.TypeRechazo
		subject = "Solicitud de licencia rechazada"
		body = fmt.Sprintf("Tu solicitud de licencia del %s al %s fue rechazada.",
			l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"))
	}
	if l.ResolverComment != "" {
		body = fmt.Sprintf("%s Comentario: %s", body, l.ResolverComment)
	}

	leaveID := l.ID.String()
	refType := notification.ReferenceTypeLeaveRequest
	sender := identity.SubjectEmployeeID
	_, err := s.dispatcher.NotifyOne(ctx, notification.Message{
		RecipientID:   l.EmployeeID.String(),
		Type:          notifType,
		Subject:       subject,
		Body:          body,
		SenderID:      &sender,
		ReferenceID:   &leaveID,
		ReferenceType: &refType,
	})
	if err != nil {
		s.logger.Error("resolve leave notification failed",
			zap.String("leave_id", leaveID),
			zap.String("recipient_id", l.EmployeeID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) Cancel(ctx context.Context, identity domain.Identity, id string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", identity.SubjectEmployeeID),
	)

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.gate.CanPerform(identity, authz.ActionLeaveCancel, l.EmployeeID.String()); err != nil {
		return LeaveResponse{}, err
	}

	if l.Status == StatusRechazado {
		return LeaveResponse{}, leaveerrors.ErrNotCancellable
	}
	if !canTransition(l.Status, StatusCancelado) {
		return LeaveResponse{}, leaveerrors.ErrInvalidTransition
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	changed, err := qtx.TransitionStatus(ctx, id,
		[]string{StatusPendiente, StatusAprobado},
		map[string]any{"status": StatusCancelado, "active": false},
	)
	if err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !changed {
		return LeaveResponse{}, leaveerrors.ErrInvalidTransition
	}

	if s.outbox != nil {
		event := events.LeaveResolvedEvent{
			EventType:  events.LeaveCancelledEventType,
			RequestID:  rid,
			LeaveID:    id,
			EmployeeID: l.EmployeeID.String(),
			Status:     StatusCancelado,
			OccurredAt: now,
		}
		if err := s.queueOutbox(ctx, tx, rid, id, event.EventType, events.LeaveResolvedTopic, event); err != nil {
			s.logger.Error("cancel leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = StatusCancelado
	l.Active = false

	// No notification on cancel; only approve and reject notify the owner.
	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
	)

	return mapToResponse(*l), nil
}

func (s *service) Summary(ctx context.Context, identity domain.Identity, employeeID string) (SummaryResponse, error) {
	if err := s.gate.CanPerform(identity, authz.ActionLeaveSummary, employeeID); err != nil {
		return SummaryResponse{}, err
	}

	rows, err := s.repo.Summarize(ctx, employeeID)
	if err != nil {
		s.logger.Error("summarize leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SummaryResponse{}, err
	}

	leaves, err := s.repo.FindFiltered(ctx, Filter{EmployeeID: employeeID})
	if err != nil {
		s.logger.Error("summary list leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{Requests: mapToListResponse(leaves)}
	for _, row := range rows {
		switch row.Status {
		case StatusPendiente:
			resp.Pending = row.Count
		case StatusAprobado:
			resp.Approved = row.Count
			resp.TotalDaysApproved = row.Days
		case StatusRechazado:
			resp.Rejected = row.Count
		}
	}
	return resp, nil
}

func (s *service) queueOutbox(ctx context.Context, tx *sql.Tx, requestID, aggregateID, eventType, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "leave_request",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateCreateRequest(subjectEmployeeID string, req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(subjectEmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if req.LeaveType == "" {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrLeaveTypeRequired
	}
	if !validLeaveType(req.LeaveType) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	if req.StartDate == "" {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrStartDateRequired
	}
	if req.EndDate == "" {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrEndDateRequired
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// totalDaysBetween counts inclusive whole days: a single-day leave is 1.
func totalDaysBetween(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate).Hours()/24) + 1
}
