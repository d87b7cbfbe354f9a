package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hotelapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type HotelHandler struct {
	service *hotelapp.Service
}

func NewHotelHandler(service *hotelapp.Service) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Create(c *gin.Context) {
	var cmd hotelapp.CreateHotelCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toHotelResponse(created), "Hotel created successfully")
}

func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd hotelapp.UpdateHotelCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hotel updated", toHotelResponse(updated))
}

func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelResponse(found))
}

func (h *HotelHandler) List(c *gin.Context) {
	hotels, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelResponses(hotels))
}

func (h *HotelHandler) Search(c *gin.Context) {
	var query hotelapp.SearchHotelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid search query", err.Error()))
		return
	}

	hotels, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelResponses(hotels))
}

func (h *HotelHandler) TopSelling(c *gin.Context) {
	hotels, err := h.service.ListTopSelling(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelResponses(hotels))
}

func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hotel deleted", nil)
}
