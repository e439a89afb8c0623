package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anuragksng/Food-Recommendation-System/services"
)

type RecommendationController struct {
	Data    *services.Dataset
	Content *services.ContentRecommender
	Collab  *services.CollaborativeRecommender
	Hybrid  *services.HybridRecommender
	Initial *services.InitialRecommender
	Refresh *services.RefreshRecommender
}

func NewRecommendationController(data *services.Dataset, content *services.ContentRecommender,
	collab *services.CollaborativeRecommender, hybrid *services.HybridRecommender,
	initial *services.InitialRecommender, refresh *services.RefreshRecommender) *RecommendationController {
	return &RecommendationController{
		Data:    data,
		Content: content,
		Collab:  collab,
		Hybrid:  hybrid,
		Initial: initial,
		Refresh: refresh,
	}
}

// GET /recommendations/content?user_id=3&dietary_preference=Vegetarian&weather=Cold&limit=10
func (rc *RecommendationController) GetContent(c *gin.Context) {
	userID, ok := rc.userID(c)
	if !ok {
		return
	}
	preference := c.Query("dietary_preference")
	if preference == "" {
		if user, found := rc.Data.UserByID(userID); found {
			preference = user.DietaryPreference
		}
	}
	weather := rc.weatherOrDefault(c, userID)
	limit := queryInt(c, "limit", services.DefaultContentLimit)

	recs := rc.Content.Recommend(userID, preference, weather, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /recommendations/collaborative?user_id=3&limit=10
func (rc *RecommendationController) GetCollaborative(c *gin.Context) {
	userID, ok := rc.userID(c)
	if !ok {
		return
	}
	limit := queryInt(c, "limit", services.DefaultCollaborativeLimit)

	liked, disliked := rc.Data.LikedAndDisliked(userID)
	recs := rc.Collab.Recommend(userID, liked, disliked, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /recommendations/hybrid?user_id=3&weather=Cold&limit=10
func (rc *RecommendationController) GetHybrid(c *gin.Context) {
	userID, ok := rc.userID(c)
	if !ok {
		return
	}
	weather := rc.weatherOrDefault(c, userID)
	limit := queryInt(c, "limit", services.DefaultHybridLimit)

	recs := rc.Hybrid.Recommend(userID, weather, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /recommendations/initial?user_id=3&weather=Cold&limit=10
func (rc *RecommendationController) GetInitial(c *gin.Context) {
	userID, ok := rc.userID(c)
	if !ok {
		return
	}
	weather := rc.weatherOrDefault(c, userID)
	limit := queryInt(c, "limit", services.DefaultInitialLimit)

	recs := rc.Initial.Recommend(userID, weather, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /recommendations/refresh?user_id=3&weather=Cold&limit=10
func (rc *RecommendationController) GetRefresh(c *gin.Context) {
	userID, ok := rc.userID(c)
	if !ok {
		return
	}
	weather := rc.weatherOrDefault(c, userID)
	limit := queryInt(c, "limit", services.DefaultInitialLimit)

	recs := rc.Refresh.Recommend(userID, weather, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (rc *RecommendationController) userID(c *gin.Context) (int, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter user_id is required"})
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return 0, false
	}
	if _, ok := rc.Data.UserByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return 0, false
	}
	return id, true
}

// weatherOrDefault takes the weather query parameter, falling back to the
// user's first stored preference row when omitted.
func (rc *RecommendationController) weatherOrDefault(c *gin.Context, userID int) string {
	if w := c.Query("weather"); w != "" {
		return w
	}
	if prefs := rc.Data.PreferencesFor(userID); len(prefs) > 0 {
		return prefs[0].WeatherType
	}
	return ""
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
