package service

import (
	"testing"

	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLineItems(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Haircut", "service", 1, "45.00"),
		lineItem("tx-1", "Shampoo", "product", 1, "12.00"),
		lineItem("tx-2", "Color", "Service", 1, "80.00"),
		lineItem("tx-3", "Gift Card", "mystery", 1, "25.00"),
	}

	split := splitLineItems(items)

	assert.Equal(t, "125", split.ServiceRevenue.String())
	assert.Equal(t, "12", split.ProductRevenue.String())
}

func TestAttachmentRate(t *testing.T) {
	// Two service transactions, one of which also carried a product.
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Haircut", "service", 1, "45.00"),
		lineItem("tx-1", "Shampoo", "product", 1, "12.00"),
		lineItem("tx-2", "Color", "service", 1, "80.00"),
	}

	assert.Equal(t, 50, splitLineItems(items).AttachmentRate())
}

func TestAttachmentRate_NoServiceTransactions(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Shampoo", "product", 1, "12.00"),
	}
	assert.Equal(t, 0, splitLineItems(items).AttachmentRate())
}

func TestAttachmentRate_ProductOnlyTxDoesNotCount(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Haircut", "service", 1, "45.00"),
		lineItem("tx-2", "Shampoo", "product", 1, "12.00"),
	}
	assert.Equal(t, 0, splitLineItems(items).AttachmentRate())
}

func TestTopServices(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Haircut", "service", 2, "90.00"),
		lineItem("tx-2", "Haircut", "service", 1, "45.00"),
		lineItem("tx-3", "Color", "service", 1, "80.00"),
		lineItem("tx-4", "Shampoo", "product", 1, "12.00"),
	}

	rankings := topServices(items, 5)
	require.Len(t, rankings, 2)

	assert.Equal(t, "Haircut", rankings[0].Name)
	assert.Equal(t, 3, rankings[0].Count)
	assert.Equal(t, "135", rankings[0].Revenue.String())
	assert.Equal(t, "45", rankings[0].AvgPrice.String())

	assert.Equal(t, "Color", rankings[1].Name)
}

func TestTopServices_TieBreaksByName(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "Blowout", "service", 1, "50.00"),
		lineItem("tx-2", "Braids", "service", 1, "50.00"),
	}

	rankings := topServices(items, 5)
	require.Len(t, rankings, 2)
	assert.Equal(t, "Blowout", rankings[0].Name)
	assert.Equal(t, "Braids", rankings[1].Name)
}

func TestTopServices_LimitAndZeroQuantity(t *testing.T) {
	items := []entity.SaleLineItem{
		lineItem("tx-1", "A", "service", 0, "10.00"), // quantity 0 counts as 1
		lineItem("tx-2", "B", "service", 1, "20.00"),
		lineItem("tx-3", "C", "service", 1, "30.00"),
	}

	rankings := topServices(items, 2)
	require.Len(t, rankings, 2)
	assert.Equal(t, "C", rankings[0].Name)
	assert.Equal(t, "B", rankings[1].Name)
}
