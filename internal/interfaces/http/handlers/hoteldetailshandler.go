package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hotelapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/hotel"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type HotelDetailsHandler struct {
	service *hotelapp.DetailsService
}

func NewHotelDetailsHandler(service *hotelapp.DetailsService) *HotelDetailsHandler {
	return &HotelDetailsHandler{service: service}
}

func (h *HotelDetailsHandler) Create(c *gin.Context) {
	var cmd hotelapp.CreateHotelDetailsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	details, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toHotelDetailsResponse(details), "Hotel details created successfully")
}

func (h *HotelDetailsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var cmd hotelapp.UpdateHotelDetailsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	details, err := h.service.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hotel details updated", toHotelDetailsResponse(details))
}

func (h *HotelDetailsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelDetailsResponse(details))
}

func (h *HotelDetailsHandler) GetByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelID")
	if !ok {
		return
	}

	details, err := h.service.GetByHotelID(c.Request.Context(), hotelID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHotelDetailsResponse(details))
}

func (h *HotelDetailsHandler) Categories(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelID")
	if !ok {
		return
	}

	categories, err := h.service.Categories(c.Request.Context(), hotelID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", categories)
}

// CategoriesByID returns the category list of a details record addressed
// by its own id rather than the hotel id.
func (h *HotelDetailsHandler) CategoriesByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", details.Categories())
}

func (h *HotelDetailsHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]HotelDetailsResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toHotelDetailsResponse(d))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func (h *HotelDetailsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hotel details deleted", nil)
}
