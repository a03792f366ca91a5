package enum

import "strings"

// LineItemType classifies a POS transaction line item as service or
// retail-product revenue.
type LineItemType string

const (
	LineItemTypeService      LineItemType = "service"
	LineItemTypeProduct      LineItemType = "product"
	LineItemTypeUnclassified LineItemType = "unclassified"
)

func (t LineItemType) String() string {
	return string(t)
}

// NormalizeLineItemType maps a free-text POS item type to its canonical
// value. Items that match neither variant set are Unclassified and are
// excluded from both the service and product revenue totals.
func NormalizeLineItemType(raw string) LineItemType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "service", "services", "svc", "treatment", "appointment_service":
		return LineItemTypeService
	case "product", "products", "retail", "retail_product", "merchandise":
		return LineItemTypeProduct
	default:
		return LineItemTypeUnclassified
	}
}
