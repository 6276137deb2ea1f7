package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agency-ops/internal/core/domain"
)

func TestDefaultGate(t *testing.T) {
	gate := DefaultGate()

	clientID, otherClient := uuid.New(), uuid.New()
	campaignID, otherCampaign := uuid.New(), uuid.New()

	admin := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleAdmin}}
	client := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleClient}, ClientID: &clientID}
	orphan := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleClient}}
	team := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleTeam}, AssignedCampaigns: []uuid.UUID{campaignID}}

	own := func(kind Kind) Resource { return Owned(kind, clientID, &campaignID) }
	foreign := func(kind Kind) Resource { return Owned(kind, otherClient, &otherCampaign) }

	tests := []struct {
		name  string
		actor Actor
		op    Operation
		res   Resource
		want  bool
	}{
		{"admin updates invoice", admin, OpUpdate, own(KindInvoice), true},
		{"admin deletes payment", admin, OpDelete, foreign(KindPayment), true},
		{"admin cannot decide", admin, OpDecide, own(KindApprovalRequest), false},
		{"admin comments", admin, OpComment, own(KindApprovalRequest), true},

		{"client reads own invoice", client, OpRead, own(KindInvoice), true},
		{"client reads foreign invoice", client, OpRead, foreign(KindInvoice), false},
		{"client lists invoices", client, OpRead, Collection(KindInvoice), true},
		{"client provisions invoices", client, OpProvision, Collection(KindInvoice), true},
		{"client cannot create invoice", client, OpCreate, Collection(KindInvoice), false},
		{"client cannot mark invoice", client, OpUpdate, own(KindInvoice), false},
		{"client creates own payment", client, OpCreate, own(KindPayment), true},
		{"client pays foreign invoice", client, OpCreate, foreign(KindPayment), false},
		{"client cannot process payment", client, OpProcess, own(KindPayment), false},
		{"client decides own request", client, OpDecide, own(KindApprovalRequest), true},
		{"client decides foreign request", client, OpDecide, foreign(KindApprovalRequest), false},
		{"client cannot delete request", client, OpDelete, own(KindApprovalRequest), false},
		{"client without record", orphan, OpRead, own(KindInvoice), false},

		{"team reads assigned request", team, OpRead, own(KindApprovalRequest), true},
		{"team reads unassigned request", team, OpRead, foreign(KindApprovalRequest), false},
		{"team cannot decide", team, OpDecide, own(KindApprovalRequest), false},
		{"team cannot read invoices", team, OpRead, own(KindInvoice), false},
		{"team reads campaign", team, OpRead, own(KindCampaign), true},

		{"anonymous", Actor{Roles: []domain.Role{domain.RoleAdmin}}, OpRead, own(KindInvoice), false},
		{"unknown kind", admin, OpRead, Collection(Kind("report")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gate.CanAct(tt.op, tt.res, tt.actor)
			assert.Equal(t, tt.want, d.Allowed)
			if !tt.want {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestAuthorizeReturnsForbidden(t *testing.T) {
	gate := DefaultGate()
	clientID := uuid.New()
	client := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleClient}, ClientID: &clientID}

	err := gate.Authorize(OpDelete, Owned(KindInvoice, clientID, nil), client)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.NoError(t, gate.Authorize(OpRead, Owned(KindInvoice, clientID, nil), client))
}

func TestRegisterReplacesPolicy(t *testing.T) {
	gate := NewGate()
	actor := Actor{UserID: uuid.New(), Roles: []domain.Role{domain.RoleTeam}}

	gate.Register(KindTask, RolePolicy{})
	assert.False(t, gate.CanAct(OpRead, Collection(KindTask), actor).Allowed)

	gate.Register(KindTask, RolePolicy{TeamOps: []Operation{OpRead}})
	assert.True(t, gate.CanAct(OpRead, Collection(KindTask), actor).Allowed)
}
