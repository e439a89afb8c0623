package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/anuragksng/Food-Recommendation-System/config"
	"github.com/anuragksng/Food-Recommendation-System/controllers"
	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/routes"
	"github.com/anuragksng/Food-Recommendation-System/services"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ds, err := services.LoadDataset(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to load dataset", "dir", cfg.DataDir, "error", err)
	}
	log.Info("dataset loaded",
		"users", len(ds.Users()), "foods", len(ds.Foods()), "ratings", len(ds.Ratings()))

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	var store *services.Store
	if db != nil {
		store = services.NewStore(db, log)
		if err := store.ImportInitialData(ds); err != nil {
			log.Fatal("failed to mirror dataset", "error", err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	content := services.NewContentRecommender(ds, rng, log)
	collab := services.NewCollaborativeRecommender(ds, log)
	hybrid := services.NewHybridRecommender(ds, content, collab, log)
	initial := services.NewInitialRecommender(ds, rng, log)
	search := services.NewSearchService(ds, store, log)
	refresh := services.NewRefreshRecommender(ds, collab, search, initial, log)
	ratings := services.NewRatingService(ds, store)
	prefs := services.NewPreferenceService(ds, store)

	router := routes.SetupRouter(log, routes.Controllers{
		Food:           controllers.NewFoodController(ds, search),
		Recommendation: controllers.NewRecommendationController(ds, content, collab, hybrid, initial, refresh),
		Preference:     controllers.NewPreferenceController(prefs),
		Rating:         controllers.NewRatingController(ratings),
	})

	log.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
