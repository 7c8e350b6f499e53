package seeds

import (
	"gorm.io/gorm"

	employees "absensiku_backend/internals/seeds/employees"
	locations "absensiku_backend/internals/seeds/locations"
)

// RunAllSeeds mengisi data awal (lokasi dulu, baru karyawan)
func RunAllSeeds(db *gorm.DB) {
	locations.SeedOfficeLocationsFromJSON(db, "internals/seeds/locations/data_office_locations.json")
	employees.SeedEmployeesFromJSON(db, "internals/seeds/employees/data_employees.json")
}
