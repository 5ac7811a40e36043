package handler

import (
	"go-farmpet-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// POST /api/v1/medications
func (h *CatalogHandler) CreateMedication(c *fiber.Ctx) error {
	var req service.MedicationRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	medication, err := h.service.CreateMedication(&req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Medication created", "data": medication})
}

// PUT /api/v1/medications/:id
func (h *CatalogHandler) UpdateMedication(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "medication")
	if err != nil {
		return err
	}

	var req service.MedicationDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	medication, err := h.service.UpdateMedication(id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(fiber.Map{"message": "Medication updated", "data": medication})
}

// GET /api/v1/medications
func (h *CatalogHandler) GetMedications(c *fiber.Ctx) error {
	medications, err := h.service.GetAllMedications()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(medications)
}

// GET /api/v1/medications/:id
func (h *CatalogHandler) GetMedication(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "medication")
	if err != nil {
		return err
	}

	medication, err := h.service.GetMedicationByID(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(medication)
}

// POST /api/v1/clients
func (h *CatalogHandler) CreateClient(c *fiber.Ctx) error {
	var req service.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	client, err := h.service.CreateClient(&req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Client created", "data": client})
}

// GET /api/v1/clients
func (h *CatalogHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetAllClients()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(clients)
}

// GET /api/v1/clients/:id
func (h *CatalogHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "client")
	if err != nil {
		return err
	}

	client, err := h.service.GetClientByID(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(client)
}

// POST /api/v1/pets
func (h *CatalogHandler) CreatePet(c *fiber.Ctx) error {
	var req service.PetRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	pet, err := h.service.CreatePet(&req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pet created", "data": pet})
}

// GET /api/v1/pets
func (h *CatalogHandler) GetPets(c *fiber.Ctx) error {
	pets, err := h.service.GetAllPets()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(pets)
}
