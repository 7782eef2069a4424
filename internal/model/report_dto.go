package model

type CreateReportRequest struct {
	Type        string `json:"type" validate:"required,oneof=review user business service other"`
	TargetID    string `json:"target_id" validate:"required,numeric_id"`
	Reason      string `json:"reason" validate:"required,oneof=spam harassment misleading other"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// TransitionReportRequest carries an admin's terminal decision on a pending
// report. Response and ResolvedBy are mandatory for both outcomes.
type TransitionReportRequest struct {
	Status     string `json:"status" validate:"required,oneof=resolved rejected"`
	Response   string `json:"response" validate:"required,max=2000"`
	ResolvedBy string `json:"resolved_by" validate:"required,numeric_id"`
}

type ListReportsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=pending resolved rejected"`
}

type ReportResponse struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	TargetID    string       `json:"target_id"`
	Reason      string       `json:"reason"`
	Description *string      `json:"description,omitempty"`
	Status      string       `json:"status"`
	SubmittedBy string       `json:"submitted_by"`
	ResolvedBy  *string      `json:"resolved_by,omitempty"`
	Response    *string      `json:"response,omitempty"`
	Submitter   *UserSummary `json:"submitter,omitempty"`
	Resolver    *UserSummary `json:"resolver,omitempty"`
	CreatedAt   string       `json:"created_at"`
	ResolvedAt  *string      `json:"resolved_at,omitempty"`
}
