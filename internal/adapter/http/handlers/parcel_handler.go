package handlers

import (
	"errors"
	"net/http"

	request "zap_shift/internal/adapter/http/dto/request"
	response "zap_shift/internal/adapter/http/dto/response"
	"zap_shift/internal/adapter/http/middleware"
	"zap_shift/internal/usecase"
	"zap_shift/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidParcelPayload = pkg.NewDomainErrorSimple("INVALID_PARCEL_INPUT", "Invalid parcel payload", http.StatusBadRequest)
)

type ParcelHandler struct {
	usecase usecase.IParcelUseCase
}

func NewParcelHandler(uc usecase.IParcelUseCase) *ParcelHandler {
	return &ParcelHandler{usecase: uc}
}

// CreateParcel godoc
// @Summary  Book a parcel
// @Tags     parcels
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload  body      request.ParcelCreateRequest  true  "Parcel"
// @Success  201      {object}  entities.Parcel
// @Failure  400      {object}  pkg.HTTPError
// @Failure  401      {object}  pkg.HTTPError
// @Failure  403      {object}  pkg.HTTPError
// @Router   /parcels [post]
func (h *ParcelHandler) CreateParcel(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.ParcelCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParcelPayload.HTTPStatus, errInvalidParcelPayload.ToHTTPError())
		return
	}

	parcel, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), identity.Email)
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, parcel)
}

func (h *ParcelHandler) ListParcels(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	parcels, err := h.usecase.ListBySenderEmail(c.Request.Context(), c.Query("email"), identity.Email)
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, parcels)
}

func (h *ParcelHandler) GetParcel(c *gin.Context) {
	parcel, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, parcel)
}

func (h *ParcelHandler) DeleteParcel(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeleteResponse{DeletedCount: res.DeletedCount})
}

func mapParcelError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParcel), errors.Is(err, usecase.ErrInvalidParcelID), errors.Is(err, usecase.ErrInvalidParcelEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParcelEmailMismatch):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "forbidden access", http.StatusForbidden)
	case errors.Is(err, usecase.ErrParcelNotFound):
		return pkg.NewDomainErrorSimple("PARCEL_NOT_FOUND", "Parcel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParcelAlreadyPaid):
		return pkg.NewDomainErrorSimple("PARCEL_ALREADY_PAID", "Parcel is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "A dependent service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
