package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anuragksng/Food-Recommendation-System/services"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{Ratings: ratings}
}

type RatingInput struct {
	FoodID int `json:"food_id" binding:"required"`
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// GET /users/:id/ratings
func (rc *RatingController) ListRatings(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	liked, disliked := rc.Ratings.LikedAndDisliked(userID)
	c.JSON(http.StatusOK, gin.H{
		"ratings":  rc.Ratings.ListByUser(userID),
		"liked":    liked,
		"disliked": disliked,
	})
}

// POST /users/:id/ratings
func (rc *RatingController) AddRating(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.Ratings.Add(userID, input.FoodID, input.Rating); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "rating recorded"})
}
