package geo

import (
	"math"

	"github.com/lintang-b-s/cyclenav/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// planar vector helpers

func DotProduct(uX, uY, vX, vY float64) float64 {
	return math.FMA(uX, vX, uY*vY)
}

func SquaredNorm(uX, uY float64) float64 {
	return DotProduct(uX, uY, uX, uY)
}

func Norm(uX, uY float64) float64 {
	return math.Sqrt(SquaredNorm(uX, uY))
}

// ProjectionLength. signed length of the projection of ap onto ab. NaN when a == b.
func ProjectionLength(aX, aY, bX, bY, pX, pY float64) float64 {
	uX, uY := pX-aX, pY-aY
	vX, vY := bX-aX, bY-aY
	return DotProduct(uX, uY, vX, vY) / Norm(vX, vY)
}
