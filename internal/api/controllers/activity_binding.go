package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vivuplan/internal/models/itinerary_models"
	"vivuplan/internal/models/request_models"
	"vivuplan/pkg/utils"
)

func bindActivity(c *gin.Context) (itinerary_models.ActivityItemInput, bool) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return itinerary_models.ActivityItemInput{}, false
	}
	input, err := req.ToActivityInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return itinerary_models.ActivityItemInput{}, false
	}
	return input, true
}
