package model

// UserResponse is the public shape of an account record. Identifiers are
// serialized as strings, never as JSON numbers.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserSummary is the submitter/resolver identity attached to report
// listings. Nil when the referenced user has since been deleted.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateUserRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Role  string `json:"role" validate:"required,oneof=user admin"`
}

type DashboardStatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalReports    int64 `json:"total_reports"`
	PendingReports  int64 `json:"pending_reports"`
	ResolvedReports int64 `json:"resolved_reports"`
	RejectedReports int64 `json:"rejected_reports"`
}
