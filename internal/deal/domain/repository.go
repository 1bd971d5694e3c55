package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListOptions struct {
	Stage   *Stage
	Company string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, deal *Deal) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Deal, error)
	List(ctx context.Context, db *gorm.DB, opts ListOptions) ([]Deal, error)
	Update(ctx context.Context, db *gorm.DB, deal *Deal) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
