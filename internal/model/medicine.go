package model

import "time"

type Medicine struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	GenericName          string    `json:"generic_name"`
	Category             string    `json:"category"`
	Manufacturer         string    `json:"manufacturer"`
	Description          string    `json:"description"`
	Dosage               string    `json:"dosage"`
	SideEffects          string    `json:"side_effects"`
	Price                float64   `json:"price"`
	RequiresPrescription bool      `json:"requires_prescription"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// MedicineRequest is used for both create and full update.
type MedicineRequest struct {
	Name                 string  `json:"name" validate:"required,max=200"`
	GenericName          string  `json:"generic_name" validate:"max=200"`
	Category             string  `json:"category" validate:"max=100"`
	Manufacturer         string  `json:"manufacturer" validate:"max=200"`
	Description          string  `json:"description" validate:"max=5000"`
	Dosage               string  `json:"dosage" validate:"max=1000"`
	SideEffects          string  `json:"side_effects" validate:"max=2000"`
	Price                float64 `json:"price" validate:"gte=0"`
	RequiresPrescription bool    `json:"requires_prescription"`
}

type MedicineListParams struct {
	ListParams
	Category string `form:"category"`
}
