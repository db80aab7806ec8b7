package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment status values. The database constrains the column to this set.
const (
	StatusPending   = "Pending"
	StatusEnrolled  = "Enrolled"
	StatusCompleted = "Completed"
)

// Statuses lists every valid enrollment status.
var Statuses = []string{StatusPending, StatusEnrolled, StatusCompleted}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Student is the sole persisted entity — one enrollment record.
type Student struct {
	ID        string    `gorm:"type:uuid;primaryKey"               json:"id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	Email     string    `gorm:"type:varchar(255);not null"         json:"email"`
	Phone     string    `gorm:"type:varchar(10);not null"          json:"phone"`
	Course    string    `gorm:"type:varchar(100);not null"         json:"course"`
	Status    string    `gorm:"type:varchar(20);not null;default:Pending" json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName pins the table name.
func (Student) TableName() string { return "students" }

// BeforeCreate assigns the immutable record id.
func (s *Student) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
