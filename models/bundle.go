package models

// BundleCategory classifies bundles by installation type.
type BundleCategory string

const (
	BundleResidential BundleCategory = "residential"
	BundleCommercial  BundleCategory = "commercial"
	BundleIndustrial  BundleCategory = "industrial"
	BundleSpecialty   BundleCategory = "specialty"
)

// BundleCategories is the display order of bundle categories.
var BundleCategories = []BundleCategory{BundleResidential, BundleCommercial, BundleIndustrial, BundleSpecialty}

// BundleItem is one equipment line of a bundle definition.
type BundleItem struct {
	EquipmentID int    `json:"equipmentId"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// EquipmentBundle is a named set of equipment quantities. UsageCount is not
// part of the definition; it is merged from the usage statistics at load.
type EquipmentBundle struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       BundleCategory `json:"category"`
	Items          []BundleItem   `json:"items"`
	TotalBasePrice float64        `json:"totalBasePrice"`
	IsCustom       bool           `json:"isCustom"`
	CreatedAt      string         `json:"createdAt,omitempty"`
	UsageCount     int            `json:"usageCount"`
}
