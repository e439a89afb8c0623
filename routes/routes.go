package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/anuragksng/Food-Recommendation-System/controllers"
	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/middlewares"
)

type Controllers struct {
	Food           *controllers.FoodController
	Recommendation *controllers.RecommendationController
	Preference     *controllers.PreferenceController
	Rating         *controllers.RatingController
}

func SetupRouter(log *logger.Logger, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID(log))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	foods := r.Group("/foods")
	{
		foods.GET("/search", ctrl.Food.SearchFoods)
		foods.GET("/:id", ctrl.Food.GetFood)
	}

	recs := r.Group("/recommendations")
	{
		recs.GET("/content", ctrl.Recommendation.GetContent)
		recs.GET("/collaborative", ctrl.Recommendation.GetCollaborative)
		recs.GET("/hybrid", ctrl.Recommendation.GetHybrid)
		recs.GET("/initial", ctrl.Recommendation.GetInitial)
		recs.GET("/refresh", ctrl.Recommendation.GetRefresh)
	}

	users := r.Group("/users")
	{
		users.GET("/:id/preferences", ctrl.Preference.GetPreferences)
		users.PUT("/:id/preferences", ctrl.Preference.UpdatePreference)
		users.GET("/:id/ratings", ctrl.Rating.ListRatings)
		users.POST("/:id/ratings", ctrl.Rating.AddRating)
	}

	return r
}
