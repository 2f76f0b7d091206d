package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vivuplan/internal/models/request_models"
	"vivuplan/internal/services"
	"vivuplan/pkg/utils"
)

type FeedbackController struct {
	itineraryService services.ItineraryServiceInterface
	feedbackService  services.FeedbackServiceInterface
}

func NewFeedbackController(itineraryService services.ItineraryServiceInterface, feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{itineraryService: itineraryService, feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Add feedback
// @Description Rate the current itinerary
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} itinerary_models.FeedbackRecord
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := f.itineraryService.SubmitFeedback(c.Request.Context(), req.Rating, req.Comments)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Cảm ơn bạn đã gửi phản hồi!")
}

// ListFeedback godoc
// @Summary List feedback
// @Description Newest first, at most 50 entries
// @Tags Feedback
// @Produce json
// @Success 200 {array} itinerary_models.FeedbackRecord
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	records, err := f.feedbackService.GetFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Feedback fetched successfully")
}
