package repository

import (
	"go-farmpet-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll() ([]model.Client, error)
	FindByID(id uuid.UUID) (*model.Client, error)
	FindByCPF(cpf string) (*model.Client, error)
	Exists(tx *gorm.DB, id uuid.UUID) (bool, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindAll() ([]model.Client, error) {
	var clients []model.Client
	err := r.db.Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(id uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.Preload("Pets").First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindByCPF(cpf string) (*model.Client, error) {
	var client model.Client
	if err := r.db.First(&client, "cpf = ?", cpf).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Exists(tx *gorm.DB, id uuid.UUID) (bool, error) {
	return exists(tx, &model.Client{}, id)
}

func exists(tx *gorm.DB, m interface{}, id uuid.UUID) (bool, error) {
	var count int64
	if err := tx.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
