package repository

import (
	"go-farmpet-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(pet *model.Pet) error
	FindAll() ([]model.Pet, error)
	FindByClientAndName(clientID uuid.UUID, name string) (*model.Pet, error)
	Exists(tx *gorm.DB, id uuid.UUID) (bool, error)
}

type petRepo struct {
	db *gorm.DB
}

func NewPetRepo(db *gorm.DB) PetRepository {
	return &petRepo{db}
}

func (r *petRepo) Create(pet *model.Pet) error {
	return r.db.Create(pet).Error
}

func (r *petRepo) FindAll() ([]model.Pet, error) {
	var pets []model.Pet
	err := r.db.Preload("Client").Order("name ASC").Find(&pets).Error
	return pets, err
}

func (r *petRepo) FindByClientAndName(clientID uuid.UUID, name string) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.First(&pet, "client_id = ? AND name = ?", clientID, name).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepo) Exists(tx *gorm.DB, id uuid.UUID) (bool, error) {
	return exists(tx, &model.Pet{}, id)
}
