// file: internals/helpers/geo.go
package helper

import "math"

const earthRadiusMeters = 6371000

// HaversineDistance menghitung jarak permukaan (meter) antara dua koordinat
// derajat desimal dengan formula haversine.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsWithinRadius mengembalikan jarak (meter) plus apakah masih dalam radius.
func IsWithinRadius(userLat, userLng, officeLat, officeLng, radius float64) (bool, float64) {
	distance := HaversineDistance(userLat, userLng, officeLat, officeLng)
	return distance <= radius, distance
}

// Round2 membulatkan ke 2 desimal (presisi penyimpanan jarak)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundMeters membulatkan ke meter terdekat (presisi tampilan)
func RoundMeters(v float64) int {
	return int(math.Round(v))
}

// ValidCoordinate memastikan lat ∈ [-90,90] dan lng ∈ [-180,180]
func ValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
