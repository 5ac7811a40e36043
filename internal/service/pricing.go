package service

import (
	"go-farmpet-api/internal/model"

	"github.com/shopspring/decimal"
)

// ComputeTotal returns unitPrice*quantity - discount + freight. A negative result is
// returned as is; callers decide how to surface it.
func ComputeTotal(unitPrice decimal.Decimal, quantity int, discount, freight decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount).Add(freight)
}

// NormalizeInstallments keeps an installment count only for credit card payments, where it
// is at least 1. Any other method stores no installments, whatever was requested.
func NormalizeInstallments(method model.PaymentMethod, requested *int) *int {
	if method != model.PaymentCreditCard {
		return nil
	}
	n := 1
	if requested != nil && *requested > 1 {
		n = *requested
	}
	return &n
}

// wholeCents reports whether d fits a numeric(12,2) column without rounding.
func wholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// applyDerived fills the fields a purchase never receives from the client. It runs right
// before every write so a stored purchase never carries stale derived values.
func applyDerived(purchase *model.Purchase, unitPrice decimal.Decimal) {
	purchase.UnitPrice = unitPrice
	purchase.Total = ComputeTotal(unitPrice, purchase.Quantity, purchase.Discount, purchase.Freight)
	purchase.Installments = NormalizeInstallments(purchase.PaymentMethod, purchase.Installments)
}
