package geo

import "github.com/lintang-b-s/cyclenav/pkg/util"

// approximate swisstopo formulas between CH1903+ (LV95) and WGS84, good to about a meter inside Switzerland.
// angles are in radians on both sides.

func Ch1903E(lon, lat float64) float64 {
	l1, p1 := auxLonLat(lon, lat)
	return 2_600_072.37 +
		211_455.93*l1 -
		10_938.51*l1*p1 -
		0.36*l1*p1*p1 -
		44.54*l1*l1*l1
}

func Ch1903N(lon, lat float64) float64 {
	l1, p1 := auxLonLat(lon, lat)
	return 1_200_147.07 +
		308_807.95*p1 +
		3_745.25*l1*l1 +
		76.63*p1*p1 -
		194.56*l1*l1*p1 +
		119.79*p1*p1*p1
}

func Ch1903Lon(e, n float64) float64 {
	x, y := auxEN(e, n)
	lon0 := 2.6779094 +
		4.728982*x +
		0.791484*x*y +
		0.1306*x*y*y -
		0.0436*x*x*x
	return util.DegreeToRadians(lon0 * 100.0 / 36.0)
}

func Ch1903Lat(e, n float64) float64 {
	x, y := auxEN(e, n)
	lat0 := 16.9023892 +
		3.238272*y -
		0.270978*x*x -
		0.002528*y*y -
		0.0447*x*x*y -
		0.0140*y*y*y
	return util.DegreeToRadians(lat0 * 100.0 / 36.0)
}

func auxLonLat(lon, lat float64) (float64, float64) {
	l1 := 1e-4 * (3600*util.RadiansToDegree(lon) - 26_782.5)
	p1 := 1e-4 * (3600*util.RadiansToDegree(lat) - 169_028.66)
	return l1, p1
}

func auxEN(e, n float64) (float64, float64) {
	return 1e-6 * (e - 2_600_000), 1e-6 * (n - 1_200_000)
}
