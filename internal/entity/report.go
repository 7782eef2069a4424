package entity

import "time"

type ReportType string

const (
	ReportTypeReview   ReportType = "review"
	ReportTypeUser     ReportType = "user"
	ReportTypeBusiness ReportType = "business"
	ReportTypeService  ReportType = "service"
	ReportTypeOther    ReportType = "other"
)

type ReportReason string

const (
	ReasonSpam       ReportReason = "spam"
	ReasonHarassment ReportReason = "harassment"
	ReasonMisleading ReportReason = "misleading"
	ReasonOther      ReportReason = "other"
)

type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusResolved ReportStatus = "resolved"
	StatusRejected ReportStatus = "rejected"
)

// Report records a complaint a user filed against some entity. The target
// is an opaque identifier with no foreign key: the reported entity lives
// outside this system. SubmittedBy and ResolvedBy are weak references to
// users; deleting a user leaves them dangling on purpose.
type Report struct {
	ID          int64        `gorm:"primaryKey;autoIncrement"`
	Type        ReportType   `gorm:"size:20;not null"`
	TargetID    int64        `gorm:"not null"`
	Reason      ReportReason `gorm:"size:20;not null"`
	Description *string      `gorm:"type:text"`
	Status      ReportStatus `gorm:"size:20;not null;default:pending;index"`
	SubmittedBy int64        `gorm:"not null;index"`
	ResolvedBy  *int64
	Response    *string `gorm:"type:text"`
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// IsTerminal reports whether no further status transition is permitted.
func (s ReportStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}
