package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReportType string

const (
	ReportTypeAccident ReportType = "accident"
	ReportTypeFire     ReportType = "fire"
	ReportTypeMedical  ReportType = "medical"
	ReportTypeSecurity ReportType = "security"
	ReportTypeOther    ReportType = "other"
)

func ValidReportType(t ReportType) bool {
	switch t {
	case ReportTypeAccident, ReportTypeFire, ReportTypeMedical, ReportTypeSecurity, ReportTypeOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusVerified ReportStatus = "verified"
	ReportStatusResolved ReportStatus = "resolved"
	ReportStatusDeclined ReportStatus = "declined"
)

// EmergencyReport moves along pending -> verified -> resolved, with a
// terminal decline exit from pending. Rows are never deleted.
type EmergencyReport struct {
	BaseModel
	ReporterID   uuid.UUID `gorm:"index"`
	Title        string
	Description  string
	Type         ReportType   `gorm:"index"`
	Status       ReportStatus `gorm:"index"`
	LocationLink string
	ImagePath    string
	VerifiedBy   *uuid.UUID
	ResolvedBy   *uuid.UUID

	// Extra client form fields we store but do not interpret.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Reporter Account `gorm:"foreignKey:ReporterID"`
}
