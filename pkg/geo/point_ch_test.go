package geo

import (
	"math"
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointChBounds(t *testing.T) {
	testCases := []struct {
		name    string
		e, n    float64
		wantErr bool
	}{
		{name: "center", e: 2_600_000, n: 1_200_000},
		{name: "lower left corner", e: SWISS_MIN_E, n: SWISS_MIN_N},
		{name: "upper right corner", e: SWISS_MAX_E, n: SWISS_MAX_N},
		{name: "west of bounds", e: SWISS_MIN_E - 0.001, n: 1_200_000, wantErr: true},
		{name: "north of bounds", e: 2_600_000, n: SWISS_MAX_N + 1, wantErr: true},
		{name: "nan", e: math.NaN(), n: 1_200_000, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPointCh(tt.e, tt.n)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.e, p.E())
			assert.Equal(t, tt.n, p.N())
		})
	}
}

func TestPointChDistances(t *testing.T) {
	a := MustPointCh(2_600_000, 1_200_000)
	b := MustPointCh(2_600_003, 1_200_004)

	assert.Equal(t, 25.0, a.SquaredDistanceTo(b))
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestPointChLonLat(t *testing.T) {
	bern := MustPointCh(2_600_000, 1_200_000)
	assert.InDelta(t, 7.438637, util.RadiansToDegree(bern.Lon()), 1e-6)
	assert.InDelta(t, 46.951081, util.RadiansToDegree(bern.Lat()), 1e-6)

	back, err := PointChFromLonLat(7.438637, 46.951081)
	require.NoError(t, err)
	assert.InDelta(t, 2_600_000, back.E(), 2)
	assert.InDelta(t, 1_200_000, back.N(), 2)

	_, err = PointChFromLonLat(-74.0, 40.7)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestPlanarDistanceMatchesHaversine(t *testing.T) {
	a := MustPointCh(2_533_132, 1_152_206)
	b := MustPointCh(2_538_090, 1_158_912)
	ca, cb := a.Coordinate(), b.Coordinate()

	km := CalculateHaversineDistance(ca.Lat, ca.Lon, cb.Lat, cb.Lon)
	assert.InEpsilon(t, a.DistanceTo(b), km*1000, 0.01)
}

func TestProjectionLengthAndLerp(t *testing.T) {
	assert.Equal(t, 3.0, ProjectionLength(0, 0, 10, 0, 3, 7))
	assert.Equal(t, -2.0, ProjectionLength(0, 0, 0, 5, 1, -2))
	assert.True(t, math.IsNaN(ProjectionLength(1, 1, 1, 1, 4, 4)))

	a := MustPointCh(2_600_000, 1_200_000)
	b := MustPointCh(2_600_100, 1_200_200)
	mid := a.Lerp(b, 0.25)
	assert.Equal(t, 2_600_025.0, mid.E())
	assert.Equal(t, 1_200_050.0, mid.N())
	assert.True(t, a.Lerp(b, 3).Equal(b))
	assert.True(t, a.Lerp(b, -1).Equal(a))
}

func TestPolylineAndLineString(t *testing.T) {
	pts := []PointCh{MustPointCh(2_600_000, 1_200_000), MustPointCh(2_601_000, 1_201_000)}

	ls := LineString(pts)
	require.Len(t, ls, 2)
	assert.InDelta(t, 7.438637, ls[0][0], 1e-6)
	assert.InDelta(t, 46.951081, ls[0][1], 1e-6)

	assert.NotEmpty(t, PolylineFromPoints(pts))

	f := NewRouteFeature(pts, map[string]interface{}{"length": 1414.2})
	assert.Equal(t, 1414.2, f.Properties["length"])
}
