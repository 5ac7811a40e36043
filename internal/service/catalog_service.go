package service

import (
	"errors"
	"fmt"

	"go-farmpet-api/internal/model"
	"go-farmpet-api/internal/repository"
	"go-farmpet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService manages the records purchases point at: medications, clients and pets.
type CatalogService interface {
	CreateMedication(req *MedicationRequest) (*model.Medication, error)
	UpdateMedication(id uuid.UUID, req *MedicationDetailsRequest) (*model.Medication, error)
	GetAllMedications() ([]model.Medication, error)
	GetMedicationByID(id uuid.UUID) (*model.Medication, error)

	CreateClient(req *ClientRequest) (*model.Client, error)
	GetAllClients() ([]model.Client, error)
	GetClientByID(id uuid.UUID) (*model.Client, error)

	CreatePet(req *PetRequest) (*model.Pet, error)
	GetAllPets() ([]model.Pet, error)
}

type MedicationRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Stock        int             `json:"stock" validate:"gte=0"`
	Prescription string          `json:"prescription"`
}

// MedicationDetailsRequest has no stock field: stock only moves through purchases.
type MedicationDetailsRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Prescription string          `json:"prescription"`
}

type ClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	CPF     string `json:"cpf" validate:"required,min=11,max=14"`
	Phone   string `json:"phone" validate:"required"`
}

type PetRequest struct {
	Name         string    `json:"name" validate:"required"`
	Species      string    `json:"species" validate:"required"`
	Breed        string    `json:"breed" validate:"required"`
	OwnerAddress string    `json:"owner_address"`
	ClientID     uuid.UUID `json:"client_id" validate:"uuid_required"`
}

type catalogService struct {
	medications repository.MedicationRepository
	clients     repository.ClientRepository
	pets        repository.PetRepository
}

func NewCatalogService(medications repository.MedicationRepository, clients repository.ClientRepository, pets repository.PetRepository) CatalogService {
	return &catalogService{
		medications: medications,
		clients:     clients,
		pets:        pets,
	}
}

func validationError(req interface{}) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	firstErr := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidRequest, firstErr.FailedField, firstErr.Tag)
}

func (s *catalogService) CreateMedication(req *MedicationRequest) (*model.Medication, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	if err := priceError(req.Price); err != nil {
		return nil, err
	}

	// Nama obat harus unik
	if _, err := s.medications.FindByName(req.Name); err == nil {
		return nil, fmt.Errorf("medication '%s' %w", req.Name, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistence("find medication", err)
	}

	medication := &model.Medication{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		Prescription: req.Prescription,
	}
	if err := s.medications.Create(medication); err != nil {
		return nil, persistence("create medication", err)
	}
	return medication, nil
}

func (s *catalogService) UpdateMedication(id uuid.UUID, req *MedicationDetailsRequest) (*model.Medication, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	if err := priceError(req.Price); err != nil {
		return nil, err
	}

	existing, err := s.GetMedicationByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != existing.Name {
		if _, err := s.medications.FindByName(req.Name); err == nil {
			return nil, fmt.Errorf("medication '%s' %w", req.Name, ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, persistence("find medication", err)
		}
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Prescription = req.Prescription
	if err := s.medications.UpdateDetails(existing); err != nil {
		return nil, persistence("update medication", err)
	}
	return s.GetMedicationByID(id)
}

func (s *catalogService) GetAllMedications() ([]model.Medication, error) {
	medications, err := s.medications.FindAll()
	if err != nil {
		return nil, persistence("list medications", err)
	}
	return medications, nil
}

func (s *catalogService) GetMedicationByID(id uuid.UUID) (*model.Medication, error) {
	medication, err := s.medications.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, EntityMedication, id, "get medication")
	}
	return medication, nil
}

func (s *catalogService) CreateClient(req *ClientRequest) (*model.Client, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}

	if _, err := s.clients.FindByCPF(req.CPF); err == nil {
		return nil, fmt.Errorf("client with CPF %s %w", req.CPF, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistence("find client", err)
	}

	client := &model.Client{
		Name:    req.Name,
		Address: req.Address,
		CPF:     req.CPF,
		Phone:   req.Phone,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, persistence("create client", err)
	}
	return client, nil
}

func (s *catalogService) GetAllClients() ([]model.Client, error) {
	clients, err := s.clients.FindAll()
	if err != nil {
		return nil, persistence("list clients", err)
	}
	return clients, nil
}

func (s *catalogService) GetClientByID(id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, EntityClient, id, "get client")
	}
	return client, nil
}

func (s *catalogService) CreatePet(req *PetRequest) (*model.Pet, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}

	if _, err := s.GetClientByID(req.ClientID); err != nil {
		return nil, err
	}

	// Satu klien tidak boleh punya dua pet dengan nama sama
	if _, err := s.pets.FindByClientAndName(req.ClientID, req.Name); err == nil {
		return nil, fmt.Errorf("pet '%s' %w for this client", req.Name, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistence("find pet", err)
	}

	pet := &model.Pet{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		OwnerAddress: req.OwnerAddress,
		ClientID:     req.ClientID,
	}
	if err := s.pets.Create(pet); err != nil {
		return nil, persistence("create pet", err)
	}
	return pet, nil
}

func (s *catalogService) GetAllPets() ([]model.Pet, error) {
	pets, err := s.pets.FindAll()
	if err != nil {
		return nil, persistence("list pets", err)
	}
	return pets, nil
}

func priceError(price decimal.Decimal) error {
	if !wholeCents(price) {
		return fmt.Errorf("%w: price must have at most 2 decimal places", ErrInvalidRequest)
	}
	return nil
}

func notFoundOr(err error, entity EntityKind, id uuid.UUID, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return persistence(op, err)
}
