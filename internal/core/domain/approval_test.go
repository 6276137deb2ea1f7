package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApproval() ApprovalRequest {
	return ApprovalRequest{
		ID:         uuid.New(),
		CampaignID: uuid.New(),
		ItemName:   "Spring banner",
		Status:     ApprovalPending,
		CreatedAt:  testNow,
	}
}

func TestApprovalDecide(t *testing.T) {
	by := uuid.New()

	tests := []struct {
		action ApprovalAction
		status ApprovalStatus
	}{
		{ActionApproved, ApprovalApproved},
		{ActionRejected, ApprovalRejected},
		{ActionChangesRequested, ApprovalChangesRequested},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			a := newApproval()
			c, err := a.Decide(tt.action, "  looks fine ", by, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.status, a.Status)
			assert.Equal(t, a.ID, c.ApprovalRequestID)
			assert.Equal(t, tt.action, c.Action)
			assert.Equal(t, "looks fine", c.Comment)
			assert.Equal(t, by, c.CreatedByUserID)
			assert.True(t, a.IsFinal())

			_, err = a.Decide(ActionApproved, "again", by, testNow.Add(time.Minute))
			assert.True(t, IsCode(err, CodeApprovalAlreadyFinalized))
			assert.Equal(t, tt.status, a.Status)
		})
	}
}

func TestApprovalDecideStampsApprover(t *testing.T) {
	by := uuid.New()
	a := newApproval()
	_, err := a.Decide(ActionApproved, "", by, testNow)
	require.NoError(t, err)
	assert.Equal(t, by, *a.ApprovedByUserID)
	assert.Equal(t, testNow, *a.ApprovedAt)
	assert.Nil(t, a.RejectedAt)
}

func TestApprovalDecideRejectsComment(t *testing.T) {
	a := newApproval()
	_, err := a.Decide(ActionComment, "note", uuid.New(), testNow)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, ApprovalPending, a.Status)
}

func TestParseDecision(t *testing.T) {
	a, err := ParseDecision("changesrequested")
	require.NoError(t, err)
	assert.Equal(t, ActionChangesRequested, a)

	_, err = ParseDecision("Comment")
	assert.Error(t, err)
	_, err = ParseDecision("")
	assert.Error(t, err)
}

func TestApprovalApplyKeepsStatus(t *testing.T) {
	a := newApproval()
	a.Status = ApprovalRejected
	name, url := " Summer banner ", "https://cdn.example/preview.png"

	require.NoError(t, a.Apply(ApprovalPatch{ItemName: &name, PreviewURL: &url}, testNow))
	assert.Equal(t, "Summer banner", a.ItemName)
	assert.Equal(t, url, *a.PreviewURL)
	assert.Equal(t, ApprovalRejected, a.Status)

	blank := ""
	assert.Equal(t, KindValidation, KindOf(a.Apply(ApprovalPatch{ItemName: &blank}, testNow)))
}

func TestNewNote(t *testing.T) {
	_, err := NewNote(uuid.New(), "   ", uuid.New(), testNow)
	assert.Equal(t, KindValidation, KindOf(err))

	c, err := NewNote(uuid.New(), "ping", uuid.New(), testNow)
	require.NoError(t, err)
	assert.Equal(t, ActionComment, c.Action)
}
