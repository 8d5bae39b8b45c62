package models

// TestPackage is an immutable catalog entry, loaded once at process start.
type TestPackage struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
}

// ReferenceRange is the expected band and unit for one parameter.
type ReferenceRange struct {
	Range string `json:"range"`
	Unit  string `json:"unit"`
}

// DefaultReferenceRange is used for parameters absent from the ranges table.
var DefaultReferenceRange = ReferenceRange{Range: "Variable", Unit: "U/L"}
