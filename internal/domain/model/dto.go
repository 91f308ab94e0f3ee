package model

// SearchRequestDTO carries a free-text city query.
type SearchRequestDTO struct {
	Query string `json:"query" validate:"required"`
}

// LocateRequestDTO carries device-provided coordinates. Label overrides the
// default display name for the resolved location.
type LocateRequestDTO struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Label     string  `json:"label,omitempty"`
}

// UnitRequestDTO carries the display unit preference.
type UnitRequestDTO struct {
	Unit string `json:"unit" validate:"required"`
}
