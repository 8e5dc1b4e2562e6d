package leave

import (
	"time"

	"github.com/google/uuid"
)

// Status values are wire-level literals shared with the clients; do not
// translate them.
const (
	StatusPendiente = "pendiente"
	StatusAprobado  = "aprobado"
	StatusRechazado = "rechazado"
	StatusCancelado = "cancelado"
)

const (
	TypeVacaciones          = "vacaciones"
	TypeEnfermedad          = "enfermedad"
	TypeAsuntosPersonales   = "asuntos_personales"
	TypeCapacitacion        = "capacitacion"
	TypeLicenciaMedica      = "licencia_medica"
	TypeExamen              = "examen"
	TypeCitaMedica          = "cita_medica"
	TypeAusenciaJustificada = "ausencia_justificada"
	TypeRazonesParticulares = "razones_particulares"
	TypeOtro                = "otro"
)

func validLeaveType(t string) bool {
	switch t {
	case TypeVacaciones, TypeEnfermedad, TypeAsuntosPersonales, TypeCapacitacion,
		TypeLicenciaMedica, TypeExamen, TypeCitaMedica, TypeAusenciaJustificada,
		TypeRazonesParticulares, TypeOtro:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusAprobado, StatusRechazado, StatusCancelado:
		return true
	}
	return false
}

// canTransition encodes the lifecycle: pending may resolve or cancel, an
// approved request may still be cancelled, rejected and cancelled are
// terminal.
func canTransition(current, target string) bool {
	switch current {
	case StatusPendiente:
		return target == StatusAprobado || target == StatusRechazado || target == StatusCancelado
	case StatusAprobado:
		return target == StatusCancelado
	default:
		return false
	}
}

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`

	LeaveType   string    `gorm:"type:varchar(30);not null"`
	RequestedAt time.Time `gorm:"not null"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays   int       `gorm:"type:int;not null;default:1"`
	Reason      string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'pendiente';index:idx_leave_requests_status"`
	ResolverID      *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt      *time.Time
	ResolverComment string `gorm:"type:text"`

	// Active drops to false once the request is rejected or cancelled.
	Active bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string { return "leave_requests" }
