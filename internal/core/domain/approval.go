package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "Pending"
	ApprovalApproved         ApprovalStatus = "Approved"
	ApprovalRejected         ApprovalStatus = "Rejected"
	ApprovalChangesRequested ApprovalStatus = "ChangesRequested"
)

// ParseApprovalStatus accepts the four request statuses.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	for _, st := range []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalChangesRequested} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", Validation("status", fmt.Sprintf("invalid approval status %q", s))
}

// ApprovalAction is recorded on every comment. The three decisions mirror
// the status they produce; ActionComment is a note without a transition.
type ApprovalAction string

const (
	ActionApproved         ApprovalAction = "Approved"
	ActionRejected         ApprovalAction = "Rejected"
	ActionChangesRequested ApprovalAction = "ChangesRequested"
	ActionComment          ApprovalAction = "Comment"
)

// ParseDecision accepts the three decision actions and nothing else.
func ParseDecision(s string) (ApprovalAction, error) {
	for _, a := range []ApprovalAction{ActionApproved, ActionRejected, ActionChangesRequested} {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}
	return "", Validation("action", fmt.Sprintf("invalid approval action %q", s))
}

// ApprovalRequest is a deliverable submitted for client sign-off. ClientID is
// the owning client of the campaign and is only populated on reads.
type ApprovalRequest struct {
	ID               uuid.UUID      `json:"id"`
	CampaignID       uuid.UUID      `json:"campaignId"`
	ClientID         uuid.UUID      `json:"clientId"`
	TaskID           *uuid.UUID     `json:"taskId,omitempty"`
	ItemName         string         `json:"itemName"`
	Description      *string        `json:"description,omitempty"`
	ItemType         *string        `json:"itemType,omitempty"`
	Status           ApprovalStatus `json:"status"`
	Explanation      *string        `json:"explanation,omitempty"`
	CTADescription   *string        `json:"ctaDescription,omitempty"`
	PlatformSpecs    *string        `json:"platformSpecs,omitempty"`
	PreviewURL       *string        `json:"previewUrl,omitempty"`
	PreviewType      *string        `json:"previewType,omitempty"`
	DueDate          *time.Time     `json:"dueDate,omitempty"`
	CreatedByUserID  uuid.UUID      `json:"createdByUserId"`
	ApprovedByUserID *uuid.UUID     `json:"approvedByUserId,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        *time.Time     `json:"updatedAt,omitempty"`
	ApprovedAt       *time.Time     `json:"approvedAt,omitempty"`
	RejectedAt       *time.Time     `json:"rejectedAt,omitempty"`
}

// ApprovalComment is an append-only audit entry on an approval request.
type ApprovalComment struct {
	ID                uuid.UUID      `json:"id"`
	ApprovalRequestID uuid.UUID      `json:"approvalRequestId"`
	Comment           string         `json:"comment"`
	Action            ApprovalAction `json:"action"`
	CreatedByUserID   uuid.UUID      `json:"createdByUserId"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// Validate checks the fields a request must carry.
func (a ApprovalRequest) Validate() error {
	if a.CampaignID == uuid.Nil {
		return Validation("campaignId", "campaign is required")
	}
	if strings.TrimSpace(a.ItemName) == "" {
		return Validation("itemName", "item name is required")
	}
	return nil
}

// IsFinal reports whether a decision has been recorded. Only Pending
// requests accept decisions.
func (a ApprovalRequest) IsFinal() bool {
	return a.Status != ApprovalPending
}

// Decide applies a client decision and returns the audit comment that must
// be appended together with the status change.
func (a *ApprovalRequest) Decide(action ApprovalAction, comment string, by uuid.UUID, at time.Time) (ApprovalComment, error) {
	if a.IsFinal() {
		return ApprovalComment{}, Conflict(CodeApprovalAlreadyFinalized,
			fmt.Sprintf("approval request %s is already finalized as %s", a.ID, a.Status))
	}
	switch action {
	case ActionApproved:
		a.Status = ApprovalApproved
		a.ApprovedAt = &at
		a.ApprovedByUserID = &by
	case ActionRejected:
		a.Status = ApprovalRejected
		a.RejectedAt = &at
	case ActionChangesRequested:
		a.Status = ApprovalChangesRequested
	default:
		return ApprovalComment{}, Validation("action", fmt.Sprintf("invalid approval action %q", action))
	}
	a.UpdatedAt = &at
	return ApprovalComment{
		ID:                uuid.New(),
		ApprovalRequestID: a.ID,
		Comment:           strings.TrimSpace(comment),
		Action:            action,
		CreatedByUserID:   by,
		CreatedAt:         at,
	}, nil
}

// ApprovalPatch holds the content fields an admin may edit; nil means
// unchanged. Status is deliberately absent.
type ApprovalPatch struct {
	ItemName       *string
	Description    *string
	ItemType       *string
	Explanation    *string
	CTADescription *string
	PlatformSpecs  *string
	PreviewURL     *string
	PreviewType    *string
	DueDate        *time.Time
}

// Apply edits content fields in place.
func (a *ApprovalRequest) Apply(p ApprovalPatch, at time.Time) error {
	if p.ItemName != nil {
		a.ItemName = strings.TrimSpace(*p.ItemName)
	}
	set := func(dst **string, v *string) {
		if v != nil {
			s := *v
			*dst = &s
		}
	}
	set(&a.Description, p.Description)
	set(&a.ItemType, p.ItemType)
	set(&a.Explanation, p.Explanation)
	set(&a.CTADescription, p.CTADescription)
	set(&a.PlatformSpecs, p.PlatformSpecs)
	set(&a.PreviewURL, p.PreviewURL)
	set(&a.PreviewType, p.PreviewType)
	if p.DueDate != nil {
		d := *p.DueDate
		a.DueDate = &d
	}
	a.UpdatedAt = &at
	return a.Validate()
}

// NewNote builds a plain comment that records no transition.
func NewNote(requestID uuid.UUID, text string, by uuid.UUID, at time.Time) (ApprovalComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ApprovalComment{}, Validation("comment", "comment text is required")
	}
	return ApprovalComment{
		ID:                uuid.New(),
		ApprovalRequestID: requestID,
		Comment:           text,
		Action:            ActionComment,
		CreatedByUserID:   by,
		CreatedAt:         at,
	}, nil
}
