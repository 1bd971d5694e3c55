package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() revenuedomain.Repository {
	return &repo{}
}

// Upsert writes or replaces the single (deal, month, item_type) cell.
// Last write wins; the unique index is the only concurrency control.
func (r *repo) Upsert(ctx context.Context, db *gorm.DB, item *revenuedomain.RevenueItem) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "deal_id"},
			{Name: "month"},
			{Name: "item_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(item).Error
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, dealID snowflake.ID, month revenuedomain.Month, itemType revenuedomain.ItemType) (*revenuedomain.RevenueItem, error) {
	var item revenuedomain.RevenueItem
	err := db.WithContext(ctx).
		Where("deal_id = ? AND month = ? AND item_type = ?", dealID, month, itemType).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, dealID snowflake.ID, month revenuedomain.Month, itemType revenuedomain.ItemType) error {
	return db.WithContext(ctx).
		Where("deal_id = ? AND month = ? AND item_type = ?", dealID, month, itemType).
		Delete(&revenuedomain.RevenueItem{}).Error
}

func (r *repo) ListByDeal(ctx context.Context, db *gorm.DB, dealID snowflake.ID) ([]revenuedomain.RevenueItem, error) {
	var items []revenuedomain.RevenueItem
	err := db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("month ASC, item_type ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteByDeal(ctx context.Context, db *gorm.DB, dealID snowflake.ID) error {
	return db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Delete(&revenuedomain.RevenueItem{}).Error
}
