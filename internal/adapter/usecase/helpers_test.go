package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port/mocks"
)

const mockAny = mock.Anything

var testNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func testOptions() []Option {
	return []Option{WithClock(func() time.Time { return testNow }), WithDefaultDueDays(14)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Email: "ops@agency.test", Roles: []domain.Role{domain.RoleAdmin}}
}

func clientIdentity(email string) domain.Identity {
	return domain.Identity{UserID: uuid.New(), Email: email, Roles: []domain.Role{domain.RoleClient}}
}

func teamIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Email: "designer@agency.test", Roles: []domain.Role{domain.RoleTeam}}
}

// expectClient makes dir resolve who to client.
func expectClient(dir *mocks.MockDirectory, who domain.Identity, client *domain.Client) {
	dir.EXPECT().FindClientByEmail(mockAny, who.Email).Return(client, nil)
}

// expectAssignments makes dir resolve the campaigns of a team member.
func expectAssignments(dir *mocks.MockDirectory, who domain.Identity, ids ...uuid.UUID) {
	dir.EXPECT().ListAssignedCampaignIDs(mockAny, who.UserID).Return(ids, nil)
}
