package request

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithuncards/cardpos/internal/domain/enum"
)

func f(v float64) *float64 { return &v }

func TestQuickItemRequestRejectsBadNumbers(t *testing.T) {
	assert.NotEmpty(t, (&QuickItemRequest{Price: f(-1)}).Validate())
	assert.NotEmpty(t, (&QuickItemRequest{Price: f(math.NaN())}).Validate())
	assert.NotEmpty(t, (&QuickItemRequest{Price: f(math.Inf(1))}).Validate())

	qty := 0
	assert.NotEmpty(t, (&QuickItemRequest{Quantity: &qty}).Validate())

	assert.Empty(t, (&QuickItemRequest{Title: "Card", Price: f(2.5)}).Validate())
}

func TestQuickItemRequestConvertsToCents(t *testing.T) {
	qty := 3
	input := (&QuickItemRequest{Title: "Card", Price: f(2.5), Quantity: &qty}).ToInput()

	assert.Equal(t, int64(250), input.UnitPrice)
	assert.Equal(t, 3, input.Quantity)
}

func TestQuickItemRequestDefaultsQuantityToOne(t *testing.T) {
	input := (&QuickItemRequest{Title: "Card"}).ToInput()

	assert.Equal(t, 1, input.Quantity)
	assert.Equal(t, int64(0), input.UnitPrice)
}

func TestUpdateDraftRequestRejectsNegativeAmounts(t *testing.T) {
	assert.NotEmpty(t, (&UpdateDraftRequest{Discount: f(-0.01)}).Validate())
	assert.NotEmpty(t, (&UpdateDraftRequest{AmountPaid: f(-5)}).Validate())
	assert.Empty(t, (&UpdateDraftRequest{Discount: f(0), AmountPaid: f(10)}).Validate())
}

func TestUpdateDraftRequestConversion(t *testing.T) {
	status := "paid"
	req := &UpdateDraftRequest{
		Discount:   f(1.25),
		AmountPaid: f(10),
		Status:     &status,
	}

	input := req.ToInput()

	require.NotNil(t, input.Discount)
	assert.Equal(t, int64(125), *input.Discount)
	require.NotNil(t, input.AmountPaid)
	assert.Equal(t, int64(1000), *input.AmountPaid)
	require.NotNil(t, input.Status)
	assert.Equal(t, enum.OrderStatusPaid, *input.Status)
}

func TestUpdateDraftRequestOmitsAbsentFields(t *testing.T) {
	input := (&UpdateDraftRequest{}).ToInput()

	assert.Nil(t, input.Discount)
	assert.Nil(t, input.AmountPaid)
	assert.Nil(t, input.Status)
	assert.Nil(t, input.CustomerID)
}

func TestQuickAddItemRequestValidation(t *testing.T) {
	assert.NotEmpty(t, (&QuickAddItemRequest{Name: "Card", Price: f(0)}).Validate())
	assert.NotEmpty(t, (&QuickAddItemRequest{Name: "Card", Price: f(-2)}).Validate())

	stock := -1
	assert.NotEmpty(t, (&QuickAddItemRequest{Name: "Card", Price: f(2), Stock: &stock}).Validate())

	assert.Empty(t, (&QuickAddItemRequest{Name: "Card", Price: f(2)}).Validate())
}

func TestCreateExpenseRequestValidation(t *testing.T) {
	assert.NotEmpty(t, (&CreateExpenseRequest{Description: "Ink", Amount: f(0)}).Validate())
	assert.Empty(t, (&CreateExpenseRequest{Description: "Ink", Amount: f(12.75)}).Validate())

	input := (&CreateExpenseRequest{Description: "Ink", Amount: f(12.75), Date: "2026-08-15"}).ToInput()
	assert.Equal(t, int64(1275), input.Amount)
}

func TestUpdateSettingsRequestValidation(t *testing.T) {
	rate := -1.0
	assert.NotEmpty(t, (&UpdateSettingsRequest{TaxRate: &rate}).Validate())

	rate = 18
	assert.Empty(t, (&UpdateSettingsRequest{TaxRate: &rate}).Validate())
}
