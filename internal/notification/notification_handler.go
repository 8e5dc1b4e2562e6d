package notification

import (
	"net/http"
	"strconv"

	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/shared/apperror"
	"dosrobles-hr/internal/shared/contextutil"
	"dosrobles-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &Handler{service: service, logger: l}
}

func identityFrom(c *gin.Context) domain.Identity {
	return domain.Identity{
		SubjectEmployeeID: c.GetString("employee_id"),
		Role:              domain.Role(c.GetString("role")),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("notification request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// recipientOrSelf resolves the recipient scope of a collection operation:
// callers address themselves unless they explicitly name another recipient.
func recipientOrSelf(c *gin.Context) string {
	if rid := c.Query("recipient_id"); rid != "" {
		return rid
	}
	return c.GetString("employee_id")
}

func (h *Handler) List(c *gin.Context) {
	identity := identityFrom(c)

	resp, err := h.service.ListForRecipient(c.Request.Context(), identity, recipientOrSelf(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListUnread(c *gin.Context) {
	identity := identityFrom(c)

	resp, err := h.service.ListUnread(c.Request.Context(), identity, recipientOrSelf(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAll(c *gin.Context) {
	identity := identityFrom(c)

	resp, err := h.service.ListAll(c.Request.Context(), identity)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) MarkRead(c *gin.Context) {
	identity := identityFrom(c)
	id := c.Param("id")

	resp, err := h.service.MarkRead(c.Request.Context(), identity, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	identity := identityFrom(c)

	updated, err := h.service.MarkAllRead(c.Request.Context(), identity, recipientOrSelf(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MarkAllReadResponse{Updated: updated}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	identity := identityFrom(c)
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), identity, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) DeleteAllRead(c *gin.Context) {
	identity := identityFrom(c)

	deleted, err := h.service.DeleteAllRead(c.Request.Context(), identity, recipientOrSelf(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DeleteAllReadResponse{Deleted: deleted}, nil)
}
