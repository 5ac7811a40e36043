package repository

import (
	"go-farmpet-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(medication *model.Medication) error
	FindAll() ([]model.Medication, error)
	FindByID(id uuid.UUID) (*model.Medication, error)
	FindByName(name string) (*model.Medication, error)
	UpdateDetails(medication *model.Medication) error

	// Unit-of-work scoped
	Lookup(tx *gorm.DB, id uuid.UUID) (*model.Medication, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
	IncrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
}

type medicationRepo struct {
	db *gorm.DB
}

func NewMedicationRepo(db *gorm.DB) MedicationRepository {
	return &medicationRepo{db}
}

func (r *medicationRepo) Create(medication *model.Medication) error {
	return r.db.Create(medication).Error
}

func (r *medicationRepo) FindAll() ([]model.Medication, error) {
	var medications []model.Medication
	err := r.db.Order("name ASC").Find(&medications).Error
	return medications, err
}

func (r *medicationRepo) FindByID(id uuid.UUID) (*model.Medication, error) {
	return r.Lookup(r.db, id)
}

func (r *medicationRepo) FindByName(name string) (*model.Medication, error) {
	var medication model.Medication
	if err := r.db.First(&medication, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

// UpdateDetails never touches stock; stock only moves through the stock ledger.
func (r *medicationRepo) UpdateDetails(medication *model.Medication) error {
	return r.db.Model(&model.Medication{}).
		Where("id = ?", medication.ID).
		Select("name", "description", "price", "prescription").
		Updates(medication).Error
}

func (r *medicationRepo) Lookup(tx *gorm.DB, id uuid.UUID) (*model.Medication, error) {
	var medication model.Medication
	if err := tx.First(&medication, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

// DecrementStock subtracts quantity only when enough stock is left, in a single statement.
// It reports false when no row matched (missing medication or not enough stock).
func (r *medicationRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Medication{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *medicationRepo) IncrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Medication{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
