package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
	"agency-ops/internal/core/port/mocks"
)

func newApprovalUseCase(t *testing.T) (*ApprovalUseCase, *mocks.MockApprovalRepository, *mocks.MockDirectory) {
	approvals := mocks.NewMockApprovalRepository(t)
	dir := mocks.NewMockDirectory(t)
	return NewApprovalUseCase(approvals, dir, policy.DefaultGate(), discardLogger(), testOptions()...), approvals, dir
}

func TestCreateApprovalRequest(t *testing.T) {
	own := &domain.Client{ID: uuid.New()}
	camp := &domain.Campaign{ID: uuid.New(), ClientID: own.ID}

	t.Run("owning client submits", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)
		approvals.EXPECT().CreateApprovalRequest(mockAny, mock.AnythingOfType("*domain.ApprovalRequest")).Return(nil)

		a, err := uc.CreateApprovalRequest(context.Background(), who, port.CreateApprovalInput{
			CampaignID: camp.ID, ItemName: "  Hero banner ",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalPending, a.Status)
		assert.Equal(t, "Hero banner", a.ItemName)
		assert.Equal(t, own.ID, a.ClientID)
		assert.Equal(t, who.UserID, a.CreatedByUserID)
		assert.Equal(t, testNow, a.CreatedAt)
	})

	t.Run("other client is forbidden", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		who := clientIdentity("rival@client.test")
		expectClient(dir, who, &domain.Client{ID: uuid.New()})
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)

		_, err := uc.CreateApprovalRequest(context.Background(), who, port.CreateApprovalInput{CampaignID: camp.ID, ItemName: "x"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("unknown campaign", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		missing := uuid.New()
		dir.EXPECT().GetCampaign(mockAny, missing).Return(nil, nil)

		_, err := uc.CreateApprovalRequest(context.Background(), adminIdentity(), port.CreateApprovalInput{CampaignID: missing, ItemName: "x"})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindValidation, derr.Kind)
		assert.Equal(t, "campaignId", derr.Field)
	})

	t.Run("task of another campaign", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		taskID := uuid.New()
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)
		dir.EXPECT().GetTask(mockAny, taskID).Return(&domain.Task{ID: taskID, CampaignID: uuid.New()}, nil)

		_, err := uc.CreateApprovalRequest(context.Background(), adminIdentity(), port.CreateApprovalInput{
			CampaignID: camp.ID, TaskID: &taskID, ItemName: "x",
		})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "taskId", derr.Field)
	})

	t.Run("item name required", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)

		_, err := uc.CreateApprovalRequest(context.Background(), adminIdentity(), port.CreateApprovalInput{CampaignID: camp.ID, ItemName: " "})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestProcessApproval(t *testing.T) {
	own := &domain.Client{ID: uuid.New()}
	req := &domain.ApprovalRequest{ID: uuid.New(), CampaignID: uuid.New(), ClientID: own.ID, Status: domain.ApprovalPending}

	t.Run("owner approves", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)
		approvals.EXPECT().DecideApprovalRequest(mockAny, port.DecideCmd{
			RequestID: req.ID, Action: domain.ActionApproved, Comment: "Looks great", By: who.UserID, At: testNow,
		}).Return(
			&domain.ApprovalRequest{ID: req.ID, Status: domain.ApprovalApproved},
			&domain.ApprovalComment{ID: uuid.New(), Action: domain.ActionApproved},
			nil,
		)

		a, err := uc.ProcessApproval(context.Background(), who, req.ID, port.DecisionInput{Action: "approved", Comment: "Looks great"})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalApproved, a.Status)
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)
		approvals.EXPECT().DecideApprovalRequest(mockAny, mock.AnythingOfType("port.DecideCmd")).
			Return(nil, nil, domain.Conflict(domain.CodeApprovalAlreadyFinalized, "finalized"))

		_, err := uc.ProcessApproval(context.Background(), who, req.ID, port.DecisionInput{Action: "Rejected"})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		assert.True(t, domain.IsCode(err, domain.CodeApprovalAlreadyFinalized))
	})

	t.Run("unknown action", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)

		_, err := uc.ProcessApproval(context.Background(), who, req.ID, port.DecisionInput{Action: "Comment"})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "action", derr.Field)
	})

	t.Run("admin cannot decide", func(t *testing.T) {
		uc, _, _ := newApprovalUseCase(t)

		_, err := uc.ProcessApproval(context.Background(), adminIdentity(), req.ID, port.DecisionInput{Action: "Approved"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("other client cannot decide", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("rival@client.test")
		expectClient(dir, who, &domain.Client{ID: uuid.New()})
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)

		_, err := uc.ProcessApproval(context.Background(), who, req.ID, port.DecisionInput{Action: "Approved"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("assigned team member cannot decide", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		who := teamIdentity()
		expectAssignments(dir, who, req.CampaignID)

		_, err := uc.ProcessApproval(context.Background(), who, req.ID, port.DecisionInput{Action: "Approved"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestAddComment(t *testing.T) {
	req := &domain.ApprovalRequest{ID: uuid.New(), CampaignID: uuid.New(), ClientID: uuid.New()}

	t.Run("admin note", func(t *testing.T) {
		uc, approvals, _ := newApprovalUseCase(t)
		who := adminIdentity()
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)
		approvals.EXPECT().AppendComment(mockAny, mock.MatchedBy(func(c domain.ApprovalComment) bool {
			return c.ApprovalRequestID == req.ID && c.Action == domain.ActionComment &&
				c.Comment == "Updated copy attached" && c.CreatedByUserID == who.UserID
		})).Return(nil)

		c, err := uc.AddComment(context.Background(), who, req.ID, " Updated copy attached ")
		require.NoError(t, err)
		assert.Equal(t, domain.ActionComment, c.Action)
	})

	t.Run("empty text", func(t *testing.T) {
		uc, approvals, _ := newApprovalUseCase(t)
		approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)

		_, err := uc.AddComment(context.Background(), adminIdentity(), req.ID, "   ")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestDeleteApprovalRequestWithComments(t *testing.T) {
	uc, approvals, _ := newApprovalUseCase(t)
	req := &domain.ApprovalRequest{ID: uuid.New(), CampaignID: uuid.New(), ClientID: uuid.New()}
	approvals.EXPECT().GetApprovalRequest(mockAny, req.ID).Return(req, nil)
	approvals.EXPECT().DeleteApprovalRequest(mockAny, req.ID).
		Return(domain.Referential(domain.CodeApprovalHasComments, "has comments"))

	err := uc.DeleteApprovalRequest(context.Background(), adminIdentity(), req.ID)
	assert.True(t, domain.IsCode(err, domain.CodeApprovalHasComments))
}

func TestListApprovalRequestsScope(t *testing.T) {
	t.Run("team member sees assigned campaigns", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := teamIdentity()
		assigned := uuid.New()
		expectAssignments(dir, who, assigned)
		approvals.EXPECT().ListApprovalRequests(mockAny, mock.MatchedBy(func(f port.ApprovalFilter) bool {
			return f.TeamScoped && len(f.AssignedCampaigns) == 1 && f.AssignedCampaigns[0] == assigned && f.ClientID == nil
		})).Return(nil, int64(0), nil)

		_, err := uc.ListApprovalRequests(context.Background(), who, port.ApprovalFilter{})
		require.NoError(t, err)
	})

	t.Run("client scope overrides query", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		own := &domain.Client{ID: uuid.New()}
		expectClient(dir, who, own)
		approvals.EXPECT().ListApprovalRequests(mockAny, mock.MatchedBy(func(f port.ApprovalFilter) bool {
			return f.ClientID != nil && *f.ClientID == own.ID && !f.TeamScoped
		})).Return([]domain.ApprovalRequest{{ClientID: own.ID}}, int64(1), nil)

		foreign := uuid.New()
		page, err := uc.ListApprovalRequests(context.Background(), who, port.ApprovalFilter{ClientID: &foreign})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})
}

func TestListApprovalRequestsByCampaign(t *testing.T) {
	own := &domain.Client{ID: uuid.New()}
	camp := &domain.Campaign{ID: uuid.New(), ClientID: own.ID}

	t.Run("owner lists without paging", func(t *testing.T) {
		uc, approvals, dir := newApprovalUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)
		approvals.EXPECT().ListApprovalRequests(mockAny, mock.MatchedBy(func(f port.ApprovalFilter) bool {
			return f.CampaignID != nil && *f.CampaignID == camp.ID && f.PageSize == 0
		})).Return([]domain.ApprovalRequest{{CampaignID: camp.ID}, {CampaignID: camp.ID}}, int64(2), nil)

		got, err := uc.ListApprovalRequestsByCampaign(context.Background(), who, camp.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("other client is forbidden", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		who := clientIdentity("rival@client.test")
		expectClient(dir, who, &domain.Client{ID: uuid.New()})
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)

		_, err := uc.ListApprovalRequestsByCampaign(context.Background(), who, camp.ID)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("unassigned team member is forbidden", func(t *testing.T) {
		uc, _, dir := newApprovalUseCase(t)
		who := teamIdentity()
		expectAssignments(dir, who, uuid.New())
		dir.EXPECT().GetCampaign(mockAny, camp.ID).Return(camp, nil)

		_, err := uc.ListApprovalRequestsByCampaign(context.Background(), who, camp.ID)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestUpdateApprovalRequestAdminOnly(t *testing.T) {
	uc, _, dir := newApprovalUseCase(t)
	who := clientIdentity("acme@client.test")
	expectClient(dir, who, &domain.Client{ID: uuid.New()})

	name := "new"
	_, err := uc.UpdateApprovalRequest(context.Background(), who, uuid.New(), domain.ApprovalPatch{ItemName: &name})
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}
