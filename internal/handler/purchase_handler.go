package handler

import (
	"go-farmpet-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// CreatePurchase records a purchase and reserves its stock
// POST /api/v1/purchases
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	result, err := h.service.CreatePurchase(c.UserContext(), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Purchase recorded", "data": result})
}

// UpdatePurchase replaces a purchase and moves stock by the difference
// PUT /api/v1/purchases/:id
func (h *PurchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "purchase")
	if err != nil {
		return err
	}

	var req service.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidJSON
	}

	result, err := h.service.UpdatePurchase(c.UserContext(), id, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(fiber.Map{"message": "Purchase updated", "data": result})
}

// DeletePurchase removes a purchase and restores its stock
// DELETE /api/v1/purchases/:id
func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "purchase")
	if err != nil {
		return err
	}

	result, err := h.service.DeletePurchase(c.UserContext(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(fiber.Map{"message": "Purchase deleted", "data": result})
}

// GetPurchases lists purchases in insertion order
// GET /api/v1/purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.ListPurchases()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"message": "Purchases retrieved", "data": purchases})
}

// GetPurchase returns one purchase
// GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "purchase")
	if err != nil {
		return err
	}

	purchase, err := h.service.GetPurchase(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"message": "Purchase retrieved", "data": purchase})
}
