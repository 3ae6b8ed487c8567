package handlers

import (
	"errors"
	"net/http"

	request "zap_shift/internal/adapter/http/dto/request"
	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase"
	"zap_shift/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRiderPayload = pkg.NewDomainErrorSimple("INVALID_RIDER_INPUT", "Invalid rider payload", http.StatusBadRequest)
)

type RiderHandler struct {
	usecase usecase.IRiderUseCase
}

func NewRiderHandler(uc usecase.IRiderUseCase) *RiderHandler {
	return &RiderHandler{usecase: uc}
}

func (h *RiderHandler) Apply(c *gin.Context) {
	var payload request.RiderApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRiderPayload.HTTPStatus, errInvalidRiderPayload.ToHTTPError())
		return
	}

	rider, err := h.usecase.Apply(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRiderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, rider)
}

func (h *RiderHandler) ListRiders(c *gin.Context) {
	riders, err := h.usecase.List(c.Request.Context(), entities.RiderStatus(c.Query("status")))
	if err != nil {
		appErr := mapRiderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, riders)
}

func (h *RiderHandler) UpdateStatus(c *gin.Context) {
	var payload request.RiderStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRiderPayload.HTTPStatus, errInvalidRiderPayload.ToHTTPError())
		return
	}

	rider, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.RiderStatus(payload.Status))
	if err != nil {
		appErr := mapRiderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rider)
}

func mapRiderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRider), errors.Is(err, usecase.ErrInvalidRiderID), errors.Is(err, usecase.ErrInvalidRiderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRiderNotFound):
		return pkg.NewDomainErrorSimple("RIDER_NOT_FOUND", "Rider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "A dependent service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
