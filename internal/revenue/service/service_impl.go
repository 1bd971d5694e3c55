package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/relaycrm/relay/internal/clock"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	"github.com/relaycrm/relay/internal/revenue/schedule"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     revenuedomain.Repository
	DealRepo dealdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     revenuedomain.Repository
	dealRepo dealdomain.Repository
}

func New(p Params) revenuedomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("revenue.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		dealRepo: p.DealRepo,
	}
}

// GetDealRevenueSchedule recomputes the projection from the deal's terms
// and its stored amendments. Nothing is cached; two calls with the same
// stored state and the same evaluation time return identical schedules.
func (s *Service) GetDealRevenueSchedule(ctx context.Context, dealID string) (*revenuedomain.Schedule, error) {
	id, err := parseID(dealID)
	if err != nil {
		return nil, revenuedomain.ErrInvalidDealID
	}

	deal, err := s.dealRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, revenuedomain.ErrDealNotFound
	}

	items, err := s.repo.ListByDeal(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	defaults := schedule.Defaults(schedule.DealTerms{
		AuditFee:        deal.AuditFee,
		RetainerMonthly: deal.RetainerMonthly,
		CustomDevFee:    deal.CustomDevFee,
		StartDate:       deal.RevenueStartDate,
		EndDate:         deal.RevenueEndDate,
	}, s.clock.Now(ctx))

	return schedule.Merge(deal.Currency, defaults, items), nil
}

func (s *Service) UpsertRevenueItem(ctx context.Context, req revenuedomain.UpsertItemRequest) (*revenuedomain.ItemResponse, error) {
	id, err := parseID(req.DealID)
	if err != nil {
		return nil, revenuedomain.ErrInvalidDealID
	}
	if !req.ItemType.Valid() {
		return nil, revenuedomain.ErrInvalidItemType
	}
	month, err := revenuedomain.ParseMonth(req.Month)
	if err != nil {
		return nil, revenuedomain.ErrInvalidMonth
	}
	if req.Amount.IsNegative() {
		return nil, revenuedomain.ErrInvalidAmount
	}

	deal, err := s.dealRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, revenuedomain.ErrDealNotFound
	}

	now := s.clock.Now(ctx)
	item := revenuedomain.RevenueItem{
		ID:        s.genID.Generate(),
		DealID:    id,
		Month:     month,
		ItemType:  req.ItemType,
		Amount:    req.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, s.db, &item); err != nil {
		return nil, err
	}

	// Replacing an existing cell keeps the original row id; report what
	// is actually stored.
	stored, err := s.repo.Find(ctx, s.db, id, month, req.ItemType)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = &item
	}

	s.log.Debug("revenue item upserted",
		zap.String("deal_id", id.String()),
		zap.String("month", month.Key()),
		zap.String("item_type", string(req.ItemType)),
	)

	return &revenuedomain.ItemResponse{
		ID:       stored.ID.String(),
		DealID:   id.String(),
		Month:    stored.Month,
		ItemType: stored.ItemType,
		Amount:   stored.Amount,
	}, nil
}

// DeleteRevenueItem reverts a cell to its default. Deleting a cell that
// has no amendment is a no-op, so resets stay idempotent.
func (s *Service) DeleteRevenueItem(ctx context.Context, req revenuedomain.DeleteItemRequest) error {
	id, err := parseID(req.DealID)
	if err != nil {
		return revenuedomain.ErrInvalidDealID
	}
	if !req.ItemType.Valid() {
		return revenuedomain.ErrInvalidItemType
	}
	month, err := revenuedomain.ParseMonth(req.Month)
	if err != nil {
		return revenuedomain.ErrInvalidMonth
	}

	return s.repo.Delete(ctx, s.db, id, month, req.ItemType)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
