package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() dealdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, deal *dealdomain.Deal) error {
	return db.WithContext(ctx).Create(deal).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*dealdomain.Deal, error) {
	var deal dealdomain.Deal
	err := db.WithContext(ctx).First(&deal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, opts dealdomain.ListOptions) ([]dealdomain.Deal, error) {
	query := db.WithContext(ctx).Model(&dealdomain.Deal{})
	if opts.Stage != nil {
		query = query.Where("stage = ?", *opts.Stage)
	}
	if opts.Company != "" {
		query = query.Where("company = ?", opts.Company)
	}

	var deals []dealdomain.Deal
	if err := query.Order("created_at ASC").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, deal *dealdomain.Deal) error {
	return db.WithContext(ctx).Save(deal).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&dealdomain.Deal{}, "id = ?", id).Error
}
