package persistence

import (
	"strings"

	"github.com/Olpagroup25/insa/internal/domain/inventory"
	"github.com/Olpagroup25/insa/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Anything other than "asc" becomes DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "ASC") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField if it is whitelisted, defaultField otherwise
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// orderClause builds a safe ORDER BY clause from a back-office filter
func orderClause(filter shared.Filter, allowedFields map[string]bool, defaultField string) string {
	return ValidateSortField(filter.OrderBy, allowedFields, defaultField) + " " + ValidateSortOrder(filter.OrderDir)
}

// pickupOrder maps the portal sort keys to their ORDER BY clause.
// id is appended so pages stay stable when the sort key ties.
var pickupOrder = map[inventory.PickupSort]string{
	inventory.PickupSortDate:  "scheduled_date DESC, id DESC",
	inventory.PickupSortName:  "name ASC, id ASC",
	inventory.PickupSortState: "state ASC, id ASC",
}

// PartnerSortFields contains allowed sort fields for partners
var PartnerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"city":       true,
	"email":      true,
}

// CarrierSortFields contains allowed sort fields for carriers
var CarrierSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// SalesOrderSortFields contains allowed sort fields for sales orders
var SalesOrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"status":       true,
	"total_amount": true,
	"confirmed_at": true,
}
