package repository

import (
	"go-farmpet-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	GetDashboardStats(lowStockThreshold int) (*DashboardStats, error)

	// Unit-of-work scoped
	Create(tx *gorm.DB, purchase *model.Purchase) error
	Update(tx *gorm.DB, purchase *model.Purchase) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error)
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalMedications int64           `json:"total_medications"`
	LowStockCount    int64           `json:"low_stock_count"`
	StockValuation   decimal.Decimal `json:"stock_valuation"`
	TotalPurchases   int64           `json:"total_purchases"`
	Revenue          decimal.Decimal `json:"revenue"`
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

// FindAll returns purchases in insertion order (ids are UUIDv7).
func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Client").Preload("Medication").Preload("Pet").
		Order("id ASC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Client").Preload("Medication").Preload("Pet").
		First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Omit(clause.Associations).Create(purchase).Error
}

// Update writes every column, including NULL pet and installments.
func (r *purchaseRepo) Update(tx *gorm.DB, purchase *model.Purchase) error {
	res := tx.Model(&model.Purchase{}).
		Where("id = ?", purchase.ID).
		Select("client_id", "medication_id", "pet_id", "quantity", "unit_price",
			"discount", "freight", "total", "payment_method", "installments").
		Updates(purchase)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *purchaseRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Delete(&model.Purchase{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindForUpdate locks the purchase row until the unit of work ends.
func (r *purchaseRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) GetDashboardStats(lowStockThreshold int) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Medication{}).Count(&stats.TotalMedications).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Medication{}).Where("stock < ?", lowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	var valuation, revenue decimal.NullDecimal
	if err := r.db.Model(&model.Medication{}).Select("SUM(stock * price)").Row().Scan(&valuation); err != nil {
		return nil, err
	}
	stats.StockValuation = valuation.Decimal

	if err := r.db.Model(&model.Purchase{}).Count(&stats.TotalPurchases).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Purchase{}).Select("SUM(total)").Row().Scan(&revenue); err != nil {
		return nil, err
	}
	stats.Revenue = revenue.Decimal

	return &stats, nil
}
