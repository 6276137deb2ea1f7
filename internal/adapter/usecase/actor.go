package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
)

// Option configures the use cases.
type Option func(*options)

type options struct {
	now            func() time.Time
	defaultDueDays int
}

func defaultOptions() options {
	return options{
		now:            func() time.Time { return time.Now().UTC() },
		defaultDueDays: 30,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDefaultDueDays sets the payment term of provisioned invoices.
func WithDefaultDueDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.defaultDueDays = days
		}
	}
}

// actorResolver turns an authenticated identity into a policy actor: the
// client record a client user acts for, matched by email, and the campaigns
// a team user is assigned to.
type actorResolver struct {
	dir port.Directory
}

func (r actorResolver) resolve(ctx context.Context, who domain.Identity) (policy.Actor, error) {
	if who.UserID == uuid.Nil {
		return policy.Actor{}, domain.Forbidden("unauthenticated")
	}
	a := policy.Actor{UserID: who.UserID, Roles: who.Roles}
	if who.HasRole(domain.RoleClient) && who.Email != "" {
		c, err := r.dir.FindClientByEmail(ctx, who.Email)
		if err != nil {
			return a, fmt.Errorf("resolve client of user %s: %w", who.UserID, err)
		}
		if c != nil {
			a.ClientID = &c.ID
		}
	}
	if who.HasRole(domain.RoleTeam) {
		ids, err := r.dir.ListAssignedCampaignIDs(ctx, who.UserID)
		if err != nil {
			return a, fmt.Errorf("resolve assignments of user %s: %w", who.UserID, err)
		}
		a.AssignedCampaigns = ids
	}
	return a, nil
}

// clientScope returns the client id list queries must be restricted to:
// nil for admins, the actor's own client for client users.
func clientScope(a policy.Actor) (*uuid.UUID, error) {
	if a.HasRole(domain.RoleAdmin) {
		return nil, nil
	}
	if a.HasRole(domain.RoleClient) {
		if a.ClientID == nil {
			return nil, domain.Forbidden("no client record is linked to this account")
		}
		id := *a.ClientID
		return &id, nil
	}
	return nil, domain.Forbidden("account has no client scope")
}

func logID(key string, id uuid.UUID) slog.Attr {
	return slog.String(key, id.String())
}
