// Package policy holds the authorization gate shared by the ledger and the
// approval workflow. The gate is a registry of per-resource policies; every
// operation asks the same CanAct question instead of branching on roles.
package policy

import (
	"slices"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
)

// Operation describes the kind of action an actor wants to perform.
type Operation string

const (
	OpRead      Operation = "read"
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpDelete    Operation = "delete"
	OpDecide    Operation = "decide"
	OpComment   Operation = "comment"
	OpProcess   Operation = "process"
	OpProvision Operation = "provision"
)

// Kind names a resource type policies are registered for.
type Kind string

const (
	KindCampaign        Kind = "campaign"
	KindTask            Kind = "task"
	KindInvoice         Kind = "invoice"
	KindPayment         Kind = "payment"
	KindApprovalRequest Kind = "approval_request"
)

// Resource is what an operation targets. A nil ClientID means a collection
// (list or create before ownership is known); the caller then scopes the
// query by the actor.
type Resource struct {
	Kind       Kind
	ClientID   *uuid.UUID
	CampaignID *uuid.UUID
}

// Collection is a resource with no owner yet.
func Collection(kind Kind) Resource {
	return Resource{Kind: kind}
}

// Owned is a resource owned by clientID, optionally through campaignID.
func Owned(kind Kind, clientID uuid.UUID, campaignID *uuid.UUID) Resource {
	return Resource{Kind: kind, ClientID: &clientID, CampaignID: campaignID}
}

// Actor is an identity resolved against the directory: the client record it
// acts for (client role) and the campaigns it is assigned to (team role).
type Actor struct {
	UserID            uuid.UUID
	Roles             []domain.Role
	ClientID          *uuid.UUID
	AssignedCampaigns []uuid.UUID
}

func (a Actor) HasRole(r domain.Role) bool { return slices.Contains(a.Roles, r) }

// OwnsClient reports whether the actor acts for clientID.
func (a Actor) OwnsClient(clientID uuid.UUID) bool {
	return a.HasRole(domain.RoleClient) && a.ClientID != nil && *a.ClientID == clientID
}

// AssignedTo reports whether the actor is assigned to campaignID.
func (a Actor) AssignedTo(campaignID uuid.UUID) bool {
	return a.HasRole(domain.RoleTeam) && slices.Contains(a.AssignedCampaigns, campaignID)
}

// Decision is the outcome of CanAct. Reason is set when denied.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision              { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Policy decides one resource kind.
type Policy interface {
	Can(actor Actor, op Operation, res Resource) Decision
}

// Gate is the central authorization checkpoint.
type Gate struct {
	policies map[Kind]Policy
}

// NewGate returns an empty gate. Most callers want DefaultGate.
func NewGate() *Gate {
	return &Gate{policies: make(map[Kind]Policy)}
}

// Register adds or replaces the policy for kind.
func (g *Gate) Register(kind Kind, p Policy) {
	g.policies[kind] = p
}

// CanAct answers whether actor may perform op on res.
func (g *Gate) CanAct(op Operation, res Resource, actor Actor) Decision {
	if actor.UserID == uuid.Nil {
		return deny("unauthenticated")
	}
	p, ok := g.policies[res.Kind]
	if !ok {
		return deny("no policy defined for " + string(res.Kind))
	}
	return p.Can(actor, op, res)
}

// Authorize is CanAct returning a Forbidden domain error on denial.
func (g *Gate) Authorize(op Operation, res Resource, actor Actor) error {
	if d := g.CanAct(op, res, actor); !d.Allowed {
		return domain.Forbidden(d.Reason)
	}
	return nil
}
