package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hotelapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type RoomNumberHandler struct {
	service *hotelapp.RoomNumberService
}

func NewRoomNumberHandler(service *hotelapp.RoomNumberService) *RoomNumberHandler {
	return &RoomNumberHandler{service: service}
}

func (h *RoomNumberHandler) Create(c *gin.Context) {
	var cmd hotelapp.CreateRoomNumberCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	room, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRoomNumberResponse(room), "Room number created successfully")
}

func (h *RoomNumberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd hotelapp.UpdateRoomNumberCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	room, err := h.service.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Room number updated", toRoomNumberResponse(room))
}

func (h *RoomNumberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomNumberResponse(room))
}

func (h *RoomNumberHandler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomNumberResponses(rooms))
}

func (h *RoomNumberHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelID")
	if !ok {
		return
	}

	rooms, err := h.service.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomNumberResponses(rooms))
}

func (h *RoomNumberHandler) ListByCategory(c *gin.Context) {
	categoryName := c.Param("categoryName")

	rooms, err := h.service.ListByCategory(c.Request.Context(), categoryName)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomNumberResponses(rooms))
}

func (h *RoomNumberHandler) ListByHotelAndCategory(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelID")
	if !ok {
		return
	}
	categoryName := c.Param("categoryName")

	rooms, err := h.service.ListByHotelAndCategory(c.Request.Context(), hotelID, categoryName)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRoomNumberResponses(rooms))
}

func (h *RoomNumberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Room number deleted", nil)
}
