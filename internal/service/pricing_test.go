package service_test

import (
	"testing"

	"go-farmpet-api/internal/model"
	"go-farmpet-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name      string
		unitPrice string
		quantity  int
		discount  string
		freight   string
		want      string
	}{
		{"freight only", "10.00", 5, "0", "2.00", "52.00"},
		{"discount and freight", "19.90", 3, "5.70", "12.30", "66.30"},
		{"no extras", "0.10", 3, "0", "0", "0.30"},
		{"discount larger than subtotal", "10.00", 1, "20.00", "0", "-10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ComputeTotal(d(tt.unitPrice), tt.quantity, d(tt.discount), d(tt.freight))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNormalizeInstallments(t *testing.T) {
	tests := []struct {
		name      string
		method    model.PaymentMethod
		requested *int
		want      *int
	}{
		{"credit card nil", model.PaymentCreditCard, nil, intPtr(1)},
		{"credit card zero", model.PaymentCreditCard, intPtr(0), intPtr(1)},
		{"credit card negative", model.PaymentCreditCard, intPtr(-2), intPtr(1)},
		{"credit card twelve", model.PaymentCreditCard, intPtr(12), intPtr(12)},
		{"debit card", model.PaymentDebitCard, intPtr(3), nil},
		{"pix", model.PaymentPix, nil, nil},
		{"cash", model.PaymentCash, intPtr(6), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.NormalizeInstallments(tt.method, tt.requested))
		})
	}
}
