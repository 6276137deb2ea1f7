package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

// Demo records use fixed ids so seeding is repeatable.
var (
	DemoClientID   = uuid.MustParse("0b6c3f0e-8f1a-4c63-9a53-6a1f0c2d7e01")
	DemoClientMail = "acme@example.com"
	DemoTeamUserID = uuid.MustParse("0b6c3f0e-8f1a-4c63-9a53-6a1f0c2d7e99")

	demoServiceID = uuid.MustParse("0b6c3f0e-8f1a-4c63-9a53-6a1f0c2d7e10")
)

// Seed inserts demo directory data: one client, a priced service and a few
// campaigns with tasks, one of them assigned to the demo team member.
func Seed(ctx context.Context, dir port.DirectoryWriter) error {
	now := time.Now().UTC()

	if err := dir.UpsertClient(ctx, domain.Client{
		ID: DemoClientID, Name: "Acme Corp", Email: DemoClientMail, CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}
	if err := dir.UpsertService(ctx, domain.Service{
		ID: demoServiceID, Name: "Social media management", Price: decimal.NewFromInt(1200),
	}); err != nil {
		return fmt.Errorf("seed service: %w", err)
	}

	for i := 1; i <= 3; i++ {
		campaignID := uuid.NewSHA1(DemoClientID, []byte(fmt.Sprintf("campaign-%d", i)))
		c := domain.Campaign{
			ID:        campaignID,
			Name:      fmt.Sprintf("Campaign %d", i),
			ClientID:  DemoClientID,
			Status:    "active",
			CreatedAt: now,
		}
		// The first campaign is billed by budget, the others by service price.
		if i == 1 {
			c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(5000))
		} else {
			sid := demoServiceID
			c.ServiceID = &sid
		}
		if err := dir.UpsertCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
		for j := 1; j <= 2; j++ {
			t := domain.Task{
				ID:         uuid.NewSHA1(campaignID, []byte(fmt.Sprintf("task-%d", j))),
				CampaignID: campaignID,
				Title:      fmt.Sprintf("Deliverable %d for campaign %d", j, i),
				Status:     "todo",
			}
			if err := dir.UpsertTask(ctx, t); err != nil {
				return fmt.Errorf("seed task: %w", err)
			}
		}
		if i == 1 {
			if err := dir.AssignTeamMember(ctx, campaignID, DemoTeamUserID); err != nil {
				return fmt.Errorf("seed assignment: %w", err)
			}
		}
	}
	return nil
}
