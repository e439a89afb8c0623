package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anuragksng/Food-Recommendation-System/models"
	"github.com/anuragksng/Food-Recommendation-System/services"
)

type PreferenceController struct {
	Prefs *services.PreferenceService
}

func NewPreferenceController(prefs *services.PreferenceService) *PreferenceController {
	return &PreferenceController{Prefs: prefs}
}

type PreferenceInput struct {
	WeatherType     string `json:"weather_type" binding:"required"`
	SpicePreference int    `json:"spice_preference"`
	SugarPreference int    `json:"sugar_preference"`
	MealType        string `json:"meal_type"`
	RecentDislikes  string `json:"recent_dislikes"`
}

// GET /users/:id/preferences
func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": pc.Prefs.For(userID)})
}

// PUT /users/:id/preferences
func (pc *PreferenceController) UpdatePreference(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var input PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref := models.UserPreference{
		UserID:          userID,
		WeatherType:     input.WeatherType,
		SpicePreference: input.SpicePreference,
		SugarPreference: input.SugarPreference,
		MealType:        input.MealType,
		RecentDislikes:  input.RecentDislikes,
	}
	if err := pc.Prefs.Upsert(pref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preference updated"})
}
