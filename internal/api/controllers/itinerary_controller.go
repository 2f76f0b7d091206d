package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vivuplan/internal/models/request_models"
	"vivuplan/internal/models/response_models"
	"vivuplan/internal/services"
	"vivuplan/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GeneratePlan godoc
// @Summary Generate an itinerary
// @Description Ask the AI planner for a new itinerary and make it the current one
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Trip parameters"
// @Success 200 {object} itinerary_models.ItineraryData
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	planReq, err := req.ToPlanRequest()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	doc, err := i.itineraryService.GeneratePlan(c.Request.Context(), planReq)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, doc, "Itinerary generated successfully")
}

// GetCurrent godoc
// @Summary Current session
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.SessionStateResponse
// @Router /itinerary/current [get]
func (i *ItineraryController) GetCurrent(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.State(), "Session fetched successfully")
}

// ToggleEditMode godoc
// @Summary Toggle edit mode
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ToggleEditModeResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/edit-mode [post]
func (i *ItineraryController) ToggleEditMode(c *gin.Context) {
	on, err := i.itineraryService.ToggleEditMode()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ToggleEditModeResponse{IsEditMode: on}, "Edit mode updated")
}

// AddActivity godoc
// @Summary Add an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayIndex path int true "Zero-based day index"
// @Param sectionIndex path int true "Zero-based section index"
// @Param request body request_models.ActivityRequest true "Activity"
// @Success 200 {object} itinerary_models.ItineraryData
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/days/{dayIndex}/sections/{sectionIndex}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	dayIndex, sectionIndex, ok := parseSectionPath(c)
	if !ok {
		return
	}
	input, ok := bindActivity(c)
	if !ok {
		return
	}

	doc, err := i.itineraryService.AddActivity(c.Request.Context(), dayIndex, sectionIndex, input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, doc, "Activity added successfully")
}

// EditActivity godoc
// @Summary Edit an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param dayIndex path int true "Zero-based day index"
// @Param sectionIndex path int true "Zero-based section index"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.ActivityRequest true "Activity"
// @Success 200 {object} itinerary_models.ItineraryData
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/days/{dayIndex}/sections/{sectionIndex}/activities/{activityId} [put]
func (i *ItineraryController) EditActivity(c *gin.Context) {
	dayIndex, sectionIndex, ok := parseSectionPath(c)
	if !ok {
		return
	}
	input, ok := bindActivity(c)
	if !ok {
		return
	}

	doc, err := i.itineraryService.EditActivity(c.Request.Context(), dayIndex, sectionIndex, c.Param("activityId"), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, doc, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Itinerary
// @Produce json
// @Param dayIndex path int true "Zero-based day index"
// @Param sectionIndex path int true "Zero-based section index"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} itinerary_models.ItineraryData
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/days/{dayIndex}/sections/{sectionIndex}/activities/{activityId} [delete]
func (i *ItineraryController) DeleteActivity(c *gin.Context) {
	dayIndex, sectionIndex, ok := parseSectionPath(c)
	if !ok {
		return
	}

	doc, err := i.itineraryService.DeleteActivity(c.Request.Context(), dayIndex, sectionIndex, c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, doc, "Activity deleted successfully")
}

// GetDaySummary godoc
// @Summary Day cost summary
// @Tags Itinerary
// @Produce json
// @Param dayIndex path int true "Zero-based day index"
// @Success 200 {object} response_models.DayCostSummaryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/days/{dayIndex}/summary [get]
func (i *ItineraryController) GetDaySummary(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return
	}

	summary, err := i.itineraryService.DaySummary(dayIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Day summary fetched successfully")
}

func parseSectionPath(c *gin.Context) (int, int, bool) {
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return 0, 0, false
	}
	sectionIndex, err := strconv.Atoi(c.Param("sectionIndex"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid section index")
		return 0, 0, false
	}
	return dayIndex, sectionIndex, true
}
