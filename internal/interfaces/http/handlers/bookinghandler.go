package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bookingapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/booking"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type BookingHandler struct {
	service *bookingapp.Service
}

func NewBookingHandler(service *bookingapp.Service) *BookingHandler {
	return &BookingHandler{service: service}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

func (h *BookingHandler) Create(c *gin.Context) {
	var cmd bookingapp.CreateBookingCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	b, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBookingResponse(b), "Booking created successfully")
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd bookingapp.UpdateBookingCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Booking updated", toBookingResponse(b))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd bookingapp.UpdateStatusCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Booking status updated", toBookingResponse(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd bookingapp.CancelBookingCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Booking canceled", toBookingResponse(b))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBookingResponse(b))
}

func (h *BookingHandler) GetByBookingNo(c *gin.Context) {
	bookings, err := h.service.GetByBookingNo(c.Request.Context(), c.Param("bookingNo"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBookingResponses(bookings))
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBookingResponses(bookings))
}

func (h *BookingHandler) ListByHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "hotelID")
	if !ok {
		return
	}

	bookings, err := h.service.ListByHotel(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBookingResponses(bookings))
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	bookings, err := h.service.ListByUser(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBookingResponses(bookings))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Booking deleted", nil)
}
