package repository

import (
	"context"
	"time"

	"chapati/internal/domain/model"
	repo "chapati/internal/repository"

	"gorm.io/gorm"
)

// ordersテーブルの行。gormタグの都合で model.Order とは分ける
type orderRow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Product    string    `gorm:"type:varchar(255);not null"`
	Quantity   int       `gorm:"not null"`
	TotalPrice int       `gorm:"not null"`
	Location   string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

func (orderRow) TableName() string { return "orders" }

func (r orderRow) toModel() model.Order {
	return model.Order{
		Product:    r.Product,
		Quantity:   r.Quantity,
		TotalPrice: r.TotalPrice,
		Location:   r.Location,
		CreatedAt:  r.CreatedAt,
		ExpiresAt:  r.ExpiresAt,
	}
}

func fromModel(o model.Order) orderRow {
	return orderRow{
		Product:    o.Product,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Location:   o.Location,
		CreatedAt:  o.CreatedAt,
		ExpiresAt:  o.ExpiresAt,
	}
}

// GormOrderStore は同じStore契約をPostgresで満たす
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) (*GormOrderStore, error) {
	if err := db.AutoMigrate(&orderRow{}); err != nil {
		return nil, err
	}
	return &GormOrderStore{db: db}, nil
}

var _ repo.OrderStore = (*GormOrderStore)(nil)

func (s *GormOrderStore) Load(ctx context.Context) ([]model.Order, error) {
	var rows []orderRow
	err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.toModel())
	}
	return orders, nil
}

func (s *GormOrderStore) Save(ctx context.Context, orders []model.Order) error {
	//契約どおり丸ごと置き換える
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&orderRow{}).Error; err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}

		rows := make([]orderRow, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, fromModel(o))
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormOrderStore) Prune(ctx context.Context, now time.Time) ([]model.Order, error) {
	err := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&orderRow{}).Error
	if err != nil {
		return nil, err
	}
	return s.Load(ctx)
}
