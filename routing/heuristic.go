package routing

import "math"

const (
	EarthRadiusKm = 6371.0

	// DefaultAverageSpeed is the divisor turning great-circle kilometres into
	// edge-cost units. It must not be lower than the fastest speed the edge
	// costs can express or the estimate stops being admissible.
	DefaultAverageSpeed = 8.0
)

// Heuristic estimates the travel cost between two coordinates.
type Heuristic func(from, to Coordinate) float64

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometres between two
// coordinates on a sphere of radius EarthRadiusKm.
func Haversine(a, b Coordinate) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	deltaPhi := toRadians(b.Lat - a.Lat)
	deltaLambda := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	// rounding can push h slightly past 1 for antipodal points
	h = math.Min(math.Max(h, 0), 1)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// TravelTime returns a heuristic dividing the great-circle distance by a fixed
// average speed.
func TravelTime(averageSpeed float64) Heuristic {
	return func(from, to Coordinate) float64 {
		return Haversine(from, to) / averageSpeed
	}
}
