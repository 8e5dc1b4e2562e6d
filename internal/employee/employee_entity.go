package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the directory row the leave core consults. Full employee CRUD
// (contracts, payroll data, documents) lives in its own service; this table
// only answers identity, display and role questions.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(150);not null"`
	Email    string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Role     string    `gorm:"type:varchar(20);not null;default:'employee';index:idx_employees_role"`
	Active   bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_employees_deleted_at"`
}
