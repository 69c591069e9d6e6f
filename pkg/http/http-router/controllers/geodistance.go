package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/geodistances/pkg"
	helper "github.com/lintang-b-s/geodistances/pkg/http/http-router/router-helper"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type geoDistanceAPI struct {
	svc GeoDistanceService
	log *zap.Logger
}

func New(svc GeoDistanceService, log *zap.Logger) *geoDistanceAPI {
	return &geoDistanceAPI{
		svc: svc,
		log: log,
	}
}

func (api *geoDistanceAPI) Routes(group *helper.RouteGroup) {
	group.GET("/settings", api.settings)

	group.POST("/distance/point", api.distanceFromPoint)
	group.POST("/distance/matrix", api.distance)
	group.POST("/distance/self", api.distanceWithinArray)

	group.POST("/within/point", api.withinDistanceOfPoint)
	group.POST("/within/matrix", api.withinDistance)
	group.POST("/within/self", api.withinDistanceAmongArray)

	group.POST("/indices/point", api.indicesWithinDistanceOfPoint)
	group.POST("/indices/matrix", api.indicesWithinDistance)
	group.POST("/indices/self", api.indicesWithinDistanceAmongArray)

	group.POST("/displace", api.displace)
}

func (api *geoDistanceAPI) ok(w http.ResponseWriter, r *http.Request, data any) {
	if err := api.writeJSON(w, r, http.StatusOK, envelope{"data": data}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// settings godoc
// @Summary		calculation settings in effect and the available distance models.
// @Description	calculation settings in effect and the available distance models.
// @Tags			settings
// @ID settings
// @Produce		application/json
// @Router			/api/settings [get]
// @Success		200	{object}	settingsResponse
func (api *geoDistanceAPI) settings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := api.svc.Settings()
	resp := settingsResponse{
		Repr:   s.String(),
		Hash:   formatHash(s.Hash()),
		Models: api.svc.Models(),
	}
	for _, p := range s.Params() {
		resp.Params = append(resp.Params, settingsParam{Name: p[0], Value: p[1]})
	}
	api.ok(w, r, resp)
}

// distanceFromPoint godoc
// @Summary		distances in km from one source to every destination.
// @Description	distances in km from one source to every destination. Large destination arrays are computed in parallel.
// @Tags			distance
// @ID distanceFromPoint
// @Param			body	body	pointRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/distance/point [post]
// @Success		200	{object}	distancesResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) distanceFromPoint(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pointRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	d, err := api.svc.DistanceFromPoint(r.Context(), request.Model, request.Source, request.Destinations)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	api.ok(w, r, distancesResponse{
		Distances:   nullable(d.Values),
		Convergence: newConvergenceResponse(d.Convergence),
	})
}

// distance godoc
// @Summary		distance matrix in km between sources and destinations.
// @Description	distance matrix in km between sources and destinations, one row per source.
// @Tags			distance
// @ID distance
// @Param			body	body	matrixRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/distance/matrix [post]
// @Success		200	{object}	matrixResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) distance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request matrixRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	m, err := api.svc.Distance(r.Context(), request.Model, request.Sources, request.Destinations)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, newMatrixResponse(m))
}

// distanceWithinArray godoc
// @Summary		symmetric distance matrix in km of an array against itself.
// @Description	symmetric distance matrix in km of an array against itself. The diagonal is zero.
// @Tags			distance
// @ID distanceWithinArray
// @Param			body	body	selfRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/distance/self [post]
// @Success		200	{object}	matrixResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) distanceWithinArray(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request selfRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	m, err := api.svc.DistanceWithinArray(r.Context(), request.Model, request.Coordinates)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, newMatrixResponse(m))
}

// withinDistanceOfPoint godoc
// @Summary		which destinations lie within the threshold of the source.
// @Description	which destinations lie within the threshold (km) of the source. Give threshold or thresholds, one per destination.
// @Tags			within
// @ID withinDistanceOfPoint
// @Param			body	body	pointThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/within/point [post]
// @Success		200	{object}	proximityResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) withinDistanceOfPoint(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pointThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	threshold, err := rowParam("threshold", request.Threshold, request.Thresholds)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	p, err := api.svc.WithinDistanceOfPoint(r.Context(), request.Model, request.Source, request.Destinations, threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, proximityResponse{
		Within:      p.Values,
		Convergence: newConvergenceResponse(p.Convergence),
	})
}

// withinDistance godoc
// @Summary		boolean matrix of source and destination pairs within the threshold.
// @Description	boolean matrix of source and destination pairs within the threshold (km).
// @Tags			within
// @ID withinDistance
// @Param			body	body	matrixThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/within/matrix [post]
// @Success		200	{object}	boolMatrixResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) withinDistance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request matrixThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	b, err := api.svc.WithinDistance(r.Context(), request.Model, request.Sources, request.Destinations, request.Threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, newBoolMatrixResponse(b))
}

// withinDistanceAmongArray godoc
// @Summary		boolean matrix of pairs within the threshold among one array.
// @Description	boolean matrix of pairs within the threshold (km) among one array. The diagonal is always true.
// @Tags			within
// @ID withinDistanceAmongArray
// @Param			body	body	selfThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/within/self [post]
// @Success		200	{object}	boolMatrixResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) withinDistanceAmongArray(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request selfThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	b, err := api.svc.WithinDistanceAmongArray(r.Context(), request.Model, request.Coordinates, request.Threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, newBoolMatrixResponse(b))
}

// indicesWithinDistanceOfPoint godoc
// @Summary		indices of destinations within the threshold of the source.
// @Description	ascending indices of destinations within the threshold (km) of the source.
// @Tags			indices
// @ID indicesWithinDistanceOfPoint
// @Param			body	body	pointThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/indices/point [post]
// @Success		200	{object}	indicesResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) indicesWithinDistanceOfPoint(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pointThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	threshold, err := rowParam("threshold", request.Threshold, request.Thresholds)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	idx, err := api.svc.IndicesWithinDistanceOfPoint(r.Context(), request.Model, request.Source, request.Destinations, threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, indicesResponse{Indices: idx})
}

// indicesWithinDistance godoc
// @Summary		per source, the indices of destinations within the threshold.
// @Description	per source, the ascending indices of destinations within the threshold (km).
// @Tags			indices
// @ID indicesWithinDistance
// @Param			body	body	matrixThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/indices/matrix [post]
// @Success		200	{object}	indexListsResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) indicesWithinDistance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request matrixThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	idx, err := api.svc.IndicesWithinDistance(r.Context(), request.Model, request.Sources, request.Destinations, request.Threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, indexListsResponse{Indices: idx})
}

// indicesWithinDistanceAmongArray godoc
// @Summary		per coordinate, the indices of coordinates of the same array within the threshold.
// @Description	per coordinate, the ascending indices of coordinates of the same array within the threshold (km). Every list contains its own index.
// @Tags			indices
// @ID indicesWithinDistanceAmongArray
// @Param			body	body	selfThresholdRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/indices/self [post]
// @Success		200	{object}	indexListsResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) indicesWithinDistanceAmongArray(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request selfThresholdRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	idx, err := api.svc.IndicesWithinDistanceAmongArray(r.Context(), request.Model, request.Coordinates, request.Threshold)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, indexListsResponse{Indices: idx})
}

// displace godoc
// @Summary		destination points reached by travelling a distance along a bearing.
// @Description	destination points reached from each source by travelling distance (km) along bearing (degrees clockwise from north). A 422 response still carries the last iterate of every row in data.
// @Tags			displace
// @ID displace
// @Param			body	body	displaceRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/displace [post]
// @Success		200	{object}	displaceResponse
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	notConvergedDisplaceResponse
// @Failure		500	{object}	errorResponse
func (api *geoDistanceAPI) displace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request displaceRequest
	if err := decodeAndValidate(r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	distance, err := rowParam("distance", request.Distance, request.Distances)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	bearing, err := rowParam("bearing", request.Bearing, request.Bearings)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	d, err := api.svc.Displace(r.Context(), request.Model, request.Sources, distance, bearing)
	if errors.Is(err, pkg.ErrConvergence) {
		api.notConvergedResponse(w, r, err, displaceResponse{
			Coordinates: d.Coordinates,
			Convergence: newConvergenceResponse(d.Convergence),
		})
		return
	}
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.ok(w, r, displaceResponse{
		Coordinates: d.Coordinates,
		Convergence: newConvergenceResponse(d.Convergence),
	})
}
