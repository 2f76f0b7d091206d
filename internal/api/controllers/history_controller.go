package controllers

import (
	"github.com/gin-gonic/gin"

	"vivuplan/internal/services"
	"vivuplan/pkg/utils"
)

type HistoryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewHistoryController(itineraryService services.ItineraryServiceInterface) *HistoryController {
	return &HistoryController{itineraryService: itineraryService}
}

// ListHistory godoc
// @Summary List saved itineraries
// @Description Most recent first, at most 20 entries
// @Tags History
// @Produce json
// @Success 200 {array} response_models.HistoryItemResponse
// @Router /history [get]
func (h *HistoryController) ListHistory(c *gin.Context) {
	items, err := h.itineraryService.ListHistory(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "History fetched successfully")
}

// LoadPlan godoc
// @Summary Load a saved itinerary
// @Tags History
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} itinerary_models.ItineraryData
// @Failure 404 {object} utils.APIResponse
// @Router /history/{planId}/load [post]
func (h *HistoryController) LoadPlan(c *gin.Context) {
	doc, err := h.itineraryService.LoadFromHistory(c.Request.Context(), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, doc, "Itinerary loaded successfully")
}

// DeletePlan godoc
// @Summary Delete a saved itinerary
// @Tags History
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /history/{planId} [delete]
func (h *HistoryController) DeletePlan(c *gin.Context) {
	if err := h.itineraryService.DeleteFromHistory(c.Request.Context(), c.Param("planId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
