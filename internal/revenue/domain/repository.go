package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, item *RevenueItem) error
	Find(ctx context.Context, db *gorm.DB, dealID snowflake.ID, month Month, itemType ItemType) (*RevenueItem, error)
	Delete(ctx context.Context, db *gorm.DB, dealID snowflake.ID, month Month, itemType ItemType) error
	ListByDeal(ctx context.Context, db *gorm.DB, dealID snowflake.ID) ([]RevenueItem, error)
	DeleteByDeal(ctx context.Context, db *gorm.DB, dealID snowflake.ID) error
}
