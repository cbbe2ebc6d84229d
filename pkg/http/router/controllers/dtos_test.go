package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestValidation(t *testing.T) {
	api := New(nil, zap.NewNop())

	testCases := []struct {
		name    string
		request interface{}
		wantErr bool
	}{
		{name: "zero coordinate", request: nearestRequest{Point: coordinateRequest{Lat: 0, Lon: 0}, Distance: 10}},
		{name: "swiss coordinate", request: nearestRequest{Point: coordinateRequest{Lat: 46.5, Lon: 6.6}, Distance: 0}},
		{name: "latitude too large", request: nearestRequest{Point: coordinateRequest{Lat: 91, Lon: 6.6}},
			wantErr: true},
		{name: "longitude too small", request: nearestRequest{Point: coordinateRequest{Lat: 46.5, Lon: -181}},
			wantErr: true},
		{name: "negative distance", request: nearestRequest{Point: coordinateRequest{Lat: 46.5, Lon: 6.6}, Distance: -1},
			wantErr: true},
		{name: "route through the equator",
			request: routeRequest{Points: []coordinateRequest{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}}},
		{name: "route with one point", request: routeRequest{Points: []coordinateRequest{{Lat: 46.5, Lon: 6.6}}},
			wantErr: true},
		{name: "route with an invalid point",
			request: routeRequest{Points: []coordinateRequest{{Lat: 46.5, Lon: 6.6}, {Lat: -95, Lon: 6.6}}}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := api.validate.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
