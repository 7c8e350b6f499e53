package dto

import (
	"absensiku_backend/internals/features/locations/model"
)

// ============================
// Response DTO
// ============================

type OfficeLocationDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// OfficeSummaryDTO adalah potongan kecil identitas kantor yang ikut
// di response check-in / penolakan out-of-range.
type OfficeSummaryDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

// ============================
// Converter
// ============================

func ToOfficeLocationDTO(m model.OfficeLocationModel) OfficeLocationDTO {
	return OfficeLocationDTO{
		ID:        m.LocationID.String(),
		Name:      m.LocationName,
		Address:   m.LocationAddress,
		Latitude:  m.LocationLatitude,
		Longitude: m.LocationLongitude,
		Radius:    m.LocationRadius,
	}
}

func ToOfficeSummaryDTO(m model.OfficeLocationModel) OfficeSummaryDTO {
	return OfficeSummaryDTO{
		ID:      m.LocationID.String(),
		Name:    m.LocationName,
		Address: m.LocationAddress,
	}
}
