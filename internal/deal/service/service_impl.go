package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/relaycrm/relay/internal/clock"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        dealdomain.Repository
	RevenueRepo revenuedomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        dealdomain.Repository
	revenueRepo revenuedomain.Repository
}

func New(p Params) dealdomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("deal.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		revenueRepo: p.RevenueRepo,
	}
}

func (s *Service) Create(ctx context.Context, req dealdomain.CreateRequest) (*dealdomain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, dealdomain.ErrInvalidName
	}

	stage := req.Stage
	if stage == "" {
		stage = dealdomain.StageLead
	}
	if !stage.Valid() {
		return nil, dealdomain.ErrInvalidStage
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, dealdomain.ErrInvalidCurrency
	}

	auditFee, err := feeOrZero(req.AuditFee)
	if err != nil {
		return nil, err
	}
	retainer, err := feeOrZero(req.RetainerMonthly)
	if err != nil {
		return nil, err
	}
	customDev, err := feeOrZero(req.CustomDevFee)
	if err != nil {
		return nil, err
	}

	if err := validateDateRange(req.RevenueStartDate, req.RevenueEndDate); err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)
	deal := dealdomain.Deal{
		ID:               s.genID.Generate(),
		Name:             name,
		Company:          strings.TrimSpace(req.Company),
		Stage:            stage,
		Currency:         currency,
		AuditFee:         auditFee,
		RetainerMonthly:  retainer,
		CustomDevFee:     customDev,
		RevenueStartDate: req.RevenueStartDate,
		RevenueEndDate:   req.RevenueEndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, s.db, &deal); err != nil {
		return nil, err
	}

	s.log.Info("deal created", zap.String("deal_id", deal.ID.String()), zap.String("stage", string(deal.Stage)))
	return toResponse(&deal), nil
}

func (s *Service) Get(ctx context.Context, id string) (*dealdomain.Response, error) {
	dealID, err := parseID(id)
	if err != nil {
		return nil, dealdomain.ErrInvalidID
	}

	deal, err := s.repo.FindByID(ctx, s.db, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, dealdomain.ErrNotFound
	}
	return toResponse(deal), nil
}

func (s *Service) List(ctx context.Context, req dealdomain.ListRequest) ([]dealdomain.Response, error) {
	opts := dealdomain.ListOptions{Company: strings.TrimSpace(req.Company)}
	if raw := strings.TrimSpace(req.Stage); raw != "" {
		stage := dealdomain.Stage(raw)
		if !stage.Valid() {
			return nil, dealdomain.ErrInvalidStage
		}
		opts.Stage = &stage
	}

	deals, err := s.repo.List(ctx, s.db, opts)
	if err != nil {
		return nil, err
	}

	resp := make([]dealdomain.Response, 0, len(deals))
	for i := range deals {
		resp = append(resp, *toResponse(&deals[i]))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, req dealdomain.UpdateRequest) (*dealdomain.Response, error) {
	dealID, err := parseID(req.ID)
	if err != nil {
		return nil, dealdomain.ErrInvalidID
	}

	deal, err := s.repo.FindByID(ctx, s.db, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, dealdomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, dealdomain.ErrInvalidName
		}
		deal.Name = name
	}
	if req.Company != nil {
		deal.Company = strings.TrimSpace(*req.Company)
	}
	if req.Stage != nil {
		if !req.Stage.Valid() {
			return nil, dealdomain.ErrInvalidStage
		}
		deal.Stage = *req.Stage
	}
	if req.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*req.Currency))
		if len(currency) != 3 {
			return nil, dealdomain.ErrInvalidCurrency
		}
		deal.Currency = currency
	}
	if req.AuditFee != nil {
		if req.AuditFee.IsNegative() {
			return nil, dealdomain.ErrInvalidFee
		}
		deal.AuditFee = *req.AuditFee
	}
	if req.RetainerMonthly != nil {
		if req.RetainerMonthly.IsNegative() {
			return nil, dealdomain.ErrInvalidFee
		}
		deal.RetainerMonthly = *req.RetainerMonthly
	}
	if req.CustomDevFee != nil {
		if req.CustomDevFee.IsNegative() {
			return nil, dealdomain.ErrInvalidFee
		}
		deal.CustomDevFee = *req.CustomDevFee
	}
	if req.ClearRevenueStartDate {
		deal.RevenueStartDate = nil
	} else if req.RevenueStartDate != nil {
		deal.RevenueStartDate = req.RevenueStartDate
	}
	if req.ClearRevenueEndDate {
		deal.RevenueEndDate = nil
	} else if req.RevenueEndDate != nil {
		deal.RevenueEndDate = req.RevenueEndDate
	}

	if err := validateDateRange(deal.RevenueStartDate, deal.RevenueEndDate); err != nil {
		return nil, err
	}

	deal.UpdatedAt = s.clock.Now(ctx)
	if err := s.repo.Update(ctx, s.db, deal); err != nil {
		return nil, err
	}
	return toResponse(deal), nil
}

// Delete removes the deal and its amendments in one transaction. The
// cascade lives here so the revenue engine never has to know about deal
// lifecycle.
func (s *Service) Delete(ctx context.Context, id string) error {
	dealID, err := parseID(id)
	if err != nil {
		return dealdomain.ErrInvalidID
	}

	deal, err := s.repo.FindByID(ctx, s.db, dealID)
	if err != nil {
		return err
	}
	if deal == nil {
		return dealdomain.ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.revenueRepo.DeleteByDeal(ctx, tx, dealID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, dealID)
	})
	if err != nil {
		return err
	}

	s.log.Info("deal deleted", zap.String("deal_id", dealID.String()))
	return nil
}

func toResponse(deal *dealdomain.Deal) *dealdomain.Response {
	return &dealdomain.Response{
		ID:               deal.ID.String(),
		Name:             deal.Name,
		Company:          deal.Company,
		Stage:            deal.Stage,
		Currency:         deal.Currency,
		AuditFee:         deal.AuditFee,
		RetainerMonthly:  deal.RetainerMonthly,
		CustomDevFee:     deal.CustomDevFee,
		RevenueStartDate: deal.RevenueStartDate,
		RevenueEndDate:   deal.RevenueEndDate,
		CreatedAt:        deal.CreatedAt,
		UpdatedAt:        deal.UpdatedAt,
	}
}

func feeOrZero(v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, nil
	}
	if v.IsNegative() {
		return decimal.Zero, dealdomain.ErrInvalidFee
	}
	return *v, nil
}

func validateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return dealdomain.ErrInvalidDateRange
	}
	return nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
