package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anuragksng/Food-Recommendation-System/services"
)

type FoodController struct {
	Data   *services.Dataset
	Search *services.SearchService
}

func NewFoodController(data *services.Dataset, search *services.SearchService) *FoodController {
	return &FoodController{Data: data, Search: search}
}

// GET /foods/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	food, ok := fc.Data.FoodByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, services.Detail(food))
}

// GET /foods/search?q=paneer&user_id=3
//
// user_id is optional; when present the term is recorded in the user's
// search history for the refresh pass.
func (fc *FoodController) SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		results, err := fc.Search.SearchAndRecord(userID, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": fc.Search.Search(query)})
}
