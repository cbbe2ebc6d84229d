package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/cyclenav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const DEFAULT_NEAREST_DISTANCE = 500.0

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.computeRoute)
	group.GET("/nearest", api.nearestNode)
	group.GET("/closest", api.closestPoint)
}

// parsePoints parses "lat,lon;lat,lon;...".
func parsePoints(s string) ([]coordinateRequest, error) {
	if s == "" {
		return nil, errors.New("points is required, as lat,lon;lat,lon")
	}
	parts := strings.Split(s, ";")
	points := make([]coordinateRequest, 0, len(parts))
	for i, part := range parts {
		p, err := parseCoordinate(part)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parseCoordinate(s string) (coordinateRequest, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return coordinateRequest{}, fmt.Errorf("%q is not a lat,lon pair", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return coordinateRequest{}, fmt.Errorf("lat %q must be a valid float", latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return coordinateRequest{}, fmt.Errorf("lon %q must be a valid float", lonStr)
	}
	return coordinateRequest{Lat: lat, Lon: lon}, nil
}

func parseQueryCoordinate(r *http.Request) (coordinateRequest, error) {
	query := r.URL.Query()
	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		return coordinateRequest{}, errors.New("lat is required and must be a valid float")
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		return coordinateRequest{}, errors.New("lon is required and must be a valid float")
	}
	return coordinateRequest{Lat: lat, Lon: lon}, nil
}

// validateRequest writes a 400 response and returns false when request is invalid.
func (api *routingAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *routingAPI) computeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeRequest
		err     error
	)
	request.Points, err = parsePoints(r.URL.Query().Get("points"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	it, err := api.routingService.ComputeRoute(r.Context(), request.coordinates())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(it)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestNode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestRequest
		err     error
	)
	request.Point, err = parseQueryCoordinate(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Distance = DEFAULT_NEAREST_DISTANCE
	if d := r.URL.Query().Get("distance"); d != "" {
		request.Distance, err = strconv.ParseFloat(d, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("distance must be a valid float"))
			return
		}
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	nodeId, point, err := api.routingService.NearestNode(request.Point.toCoordinate(), request.Distance)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNodeResponse(nodeId, point)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) closestPoint(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request closestRequest
		err     error
	)
	request.Points, err = parsePoints(r.URL.Query().Get("points"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Point, err = parseQueryCoordinate(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	cp, err := api.routingService.ClosestPoint(r.Context(), request.coordinates(), request.Point.toCoordinate())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewClosestResponse(cp)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
