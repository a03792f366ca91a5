package service

import (
	"math"
	"sort"

	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// retailSplit partitions POS line items into service and product revenue
// and tracks which transactions contained each kind of item. Items whose
// type normalizes to Unclassified are excluded from both totals; the
// split therefore may not sum to the raw transaction total.
type retailSplit struct {
	ServiceRevenue decimal.Decimal
	ProductRevenue decimal.Decimal
	serviceTxIDs   map[string]struct{}
	productTxIDs   map[string]struct{}
}

// splitLineItems classifies every line item and accumulates the split.
func splitLineItems(items []entity.SaleLineItem) retailSplit {
	split := retailSplit{
		ServiceRevenue: decimal.Zero,
		ProductRevenue: decimal.Zero,
		serviceTxIDs:   make(map[string]struct{}),
		productTxIDs:   make(map[string]struct{}),
	}

	for _, item := range items {
		switch item.NormalizedType() {
		case enum.LineItemTypeService:
			split.ServiceRevenue = split.ServiceRevenue.Add(item.TotalAmount)
			split.serviceTxIDs[item.TransactionID] = struct{}{}
		case enum.LineItemTypeProduct:
			split.ProductRevenue = split.ProductRevenue.Add(item.TotalAmount)
			split.productTxIDs[item.TransactionID] = struct{}{}
		}
	}

	split.ServiceRevenue = split.ServiceRevenue.Round(2)
	split.ProductRevenue = split.ProductRevenue.Round(2)
	return split
}

// AttachmentRate is the percentage of service-containing transactions
// that also included a product, rounded to an integer. Zero when there
// were no service transactions.
func (s retailSplit) AttachmentRate() int {
	if len(s.serviceTxIDs) == 0 {
		return 0
	}
	attached := 0
	for txID := range s.serviceTxIDs {
		if _, ok := s.productTxIDs[txID]; ok {
			attached++
		}
	}
	return int(math.Round(float64(attached) / float64(len(s.serviceTxIDs)) * 100))
}

// topServices ranks the period's service line items by revenue. Count
// accumulates quantities, avgPrice divides revenue by count. Ties break
// by name so equal revenues rank deterministically.
func topServices(items []entity.SaleLineItem, limit int) []ServiceRanking {
	type serviceAgg struct {
		count   int
		revenue decimal.Decimal
	}
	byName := make(map[string]*serviceAgg)

	for _, item := range items {
		if item.NormalizedType() != enum.LineItemTypeService {
			continue
		}
		agg, ok := byName[item.ItemName]
		if !ok {
			agg = &serviceAgg{revenue: decimal.Zero}
			byName[item.ItemName] = agg
		}
		agg.count += item.EffectiveQuantity()
		agg.revenue = agg.revenue.Add(item.TotalAmount)
	}

	rankings := make([]ServiceRanking, 0, len(byName))
	for name, agg := range byName {
		ranking := ServiceRanking{
			Name:     name,
			Count:    agg.count,
			Revenue:  agg.revenue.Round(2),
			AvgPrice: decimal.Zero,
		}
		if agg.count > 0 {
			ranking.AvgPrice = agg.revenue.Div(decimal.NewFromInt(int64(agg.count))).Round(2)
		}
		rankings = append(rankings, ranking)
	}

	sort.Slice(rankings, func(i, j int) bool {
		cmp := rankings[i].Revenue.Cmp(rankings[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return rankings[i].Name < rankings[j].Name
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}
