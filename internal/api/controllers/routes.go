package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the planner API. generateLimit guards the AI call.
func RegisterRoutes(r *gin.Engine,
	itineraryController *ItineraryController,
	historyController *HistoryController,
	feedbackController *FeedbackController,
	generateLimit gin.HandlerFunc) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", generateLimit, itineraryController.GeneratePlan)
	itineraryGroup.GET("/current", itineraryController.GetCurrent)
	itineraryGroup.POST("/edit-mode", itineraryController.ToggleEditMode)
	itineraryGroup.GET("/days/:dayIndex/summary", itineraryController.GetDaySummary)
	itineraryGroup.POST("/days/:dayIndex/sections/:sectionIndex/activities", itineraryController.AddActivity)
	itineraryGroup.PUT("/days/:dayIndex/sections/:sectionIndex/activities/:activityId", itineraryController.EditActivity)
	itineraryGroup.DELETE("/days/:dayIndex/sections/:sectionIndex/activities/:activityId", itineraryController.DeleteActivity)

	historyGroup := r.Group("/history")
	historyGroup.GET("", historyController.ListHistory)
	historyGroup.POST("/:planId/load", historyController.LoadPlan)
	historyGroup.DELETE("/:planId", historyController.DeletePlan)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.POST("", feedbackController.AddFeedback)
	feedbackGroup.GET("", feedbackController.ListFeedback)
}
