package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is the agency customer a campaign is run for. Client actors are
// matched to their Client record by email.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service is a priced offering a campaign may be sold as.
type Service struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Campaign represents a client engagement. It is owned by plain CRUD outside
// the ledger and the approval workflow, which only read it.
type Campaign struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	ClientID  uuid.UUID           `json:"clientId"`
	ServiceID *uuid.UUID          `json:"serviceId,omitempty"`
	Budget    decimal.NullDecimal `json:"budget"`
	Status    string              `json:"status"` // planned, active, completed
	CreatedAt time.Time           `json:"createdAt"`
}

// BillableCampaign is the list shape used for invoice provisioning: the
// campaign joined with the price of its service.
type BillableCampaign struct {
	Campaign
	ServicePrice decimal.NullDecimal
}

// BillableAmount is the budget when positive, otherwise the service price,
// otherwise zero.
func (c BillableCampaign) BillableAmount() decimal.Decimal {
	if c.Budget.Valid && c.Budget.Decimal.IsPositive() {
		return c.Budget.Decimal
	}
	if c.ServicePrice.Valid && c.ServicePrice.Decimal.IsPositive() {
		return c.ServicePrice.Decimal
	}
	return decimal.Zero
}

// Task is a unit of campaign work an approval request may refer to.
type Task struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
}
