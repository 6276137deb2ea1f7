package policy

import (
	"fmt"
	"slices"

	"agency-ops/internal/core/domain"
)

// RolePolicy grants client and team operations on one resource kind.
// Clients are limited to resources of their own client record, team
// members to resources of campaigns they are assigned to.
type RolePolicy struct {
	ClientOps []Operation
	TeamOps   []Operation
}

// Can implements Policy.
func (p RolePolicy) Can(actor Actor, op Operation, res Resource) Decision {
	reason := fmt.Sprintf("not allowed to %s %s", op, res.Kind)
	if actor.HasRole(domain.RoleClient) && slices.Contains(p.ClientOps, op) {
		if res.ClientID == nil {
			return allow()
		}
		if actor.OwnsClient(*res.ClientID) {
			return allow()
		}
		reason = fmt.Sprintf("%s belongs to another client", res.Kind)
	}
	if actor.HasRole(domain.RoleTeam) && slices.Contains(p.TeamOps, op) {
		if res.ClientID == nil && res.CampaignID == nil {
			return allow()
		}
		if res.CampaignID != nil && actor.AssignedTo(*res.CampaignID) {
			return allow()
		}
		reason = fmt.Sprintf("not assigned to the campaign of this %s", res.Kind)
	}
	return deny(reason)
}

// AdminBypassPolicy allows everything for admins, except the operations
// listed in Except, and defers to the inner policy otherwise.
type AdminBypassPolicy struct {
	Inner  Policy
	Except []Operation
}

// Can implements Policy.
func (p AdminBypassPolicy) Can(actor Actor, op Operation, res Resource) Decision {
	if actor.HasRole(domain.RoleAdmin) && !slices.Contains(p.Except, op) {
		return allow()
	}
	return p.Inner.Can(actor, op, res)
}

// DefaultGate registers the agency rules:
//
//	campaign, task    client: read           team: read
//	invoice           client: read, provision
//	payment           client: read, create
//	approval request  client: read, create, decide, comment   team: read
//
// Admins may do anything except decide approval requests, which belongs to
// the owning client alone.
func DefaultGate() *Gate {
	g := NewGate()
	g.Register(KindCampaign, AdminBypassPolicy{Inner: RolePolicy{
		ClientOps: []Operation{OpRead},
		TeamOps:   []Operation{OpRead},
	}})
	g.Register(KindTask, AdminBypassPolicy{Inner: RolePolicy{
		ClientOps: []Operation{OpRead},
		TeamOps:   []Operation{OpRead},
	}})
	g.Register(KindInvoice, AdminBypassPolicy{Inner: RolePolicy{
		ClientOps: []Operation{OpRead, OpProvision},
	}})
	g.Register(KindPayment, AdminBypassPolicy{Inner: RolePolicy{
		ClientOps: []Operation{OpRead, OpCreate},
	}})
	g.Register(KindApprovalRequest, AdminBypassPolicy{
		Inner: RolePolicy{
			ClientOps: []Operation{OpRead, OpCreate, OpDecide, OpComment},
			TeamOps:   []Operation{OpRead},
		},
		Except: []Operation{OpDecide},
	})
	return g
}
