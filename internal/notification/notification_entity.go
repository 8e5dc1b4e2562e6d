package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAusencia   = "ausencia"
	TypeMensaje    = "mensaje"
	TypeAlerta     = "alerta"
	TypeAprobacion = "aprobacion"
	TypeRechazo    = "rechazo"
	TypeEvento     = "evento"
	TypeOtro       = "otro"

	PriorityBaja  = "baja"
	PriorityMedia = "media"
	PriorityAlta  = "alta"

	ReferenceTypeLeaveRequest = "leave-request"
)

func validType(t string) bool {
	switch t {
	case TypeAusencia, TypeMensaje, TypeAlerta, TypeAprobacion, TypeRechazo, TypeEvento, TypeOtro:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch p {
	case PriorityBaja, PriorityMedia, PriorityAlta:
		return true
	}
	return false
}

// Notification is immutable once written, except for the Read flag.
type Notification struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientEmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient_read"`

	Type    string `gorm:"type:varchar(20);not null"`
	Subject string `gorm:"type:varchar(200);not null"`
	Body    string `gorm:"type:text;not null"`
	Read    bool   `gorm:"not null;default:false;index:idx_notifications_recipient_read"`

	SenderEmployeeID *uuid.UUID `gorm:"type:uuid"`
	Priority         string     `gorm:"type:varchar(10);not null;default:'media'"`
	ReferenceID      *string    `gorm:"type:varchar(64)"`
	ReferenceType    *string    `gorm:"type:varchar(30)"`

	CreatedAt time.Time
}
