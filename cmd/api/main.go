package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/karadarhythm/health-api/internal/config"
	bloodpressureHandler "github.com/karadarhythm/health-api/internal/handler/bloodpressure"
	"github.com/karadarhythm/health-api/internal/handler/catalogs"
	conditionHandler "github.com/karadarhythm/health-api/internal/handler/condition"
	exerciseHandler "github.com/karadarhythm/health-api/internal/handler/exercise"
	foodlogHandler "github.com/karadarhythm/health-api/internal/handler/foodlog"
	"github.com/karadarhythm/health-api/internal/handler/insight"
	missionHandler "github.com/karadarhythm/health-api/internal/handler/mission"
	recipeHandler "github.com/karadarhythm/health-api/internal/handler/recipe"
	streakHandler "github.com/karadarhythm/health-api/internal/handler/streak"
	visitHandler "github.com/karadarhythm/health-api/internal/handler/visit"
	weightHandler "github.com/karadarhythm/health-api/internal/handler/weight"
	"github.com/karadarhythm/health-api/internal/repository/postgres"
	"github.com/karadarhythm/health-api/internal/router"
	"github.com/karadarhythm/health-api/internal/service/advice"
	"github.com/karadarhythm/health-api/internal/service/analytics"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/condition"
	"github.com/karadarhythm/health-api/internal/service/exercise"
	"github.com/karadarhythm/health-api/internal/service/foodlog"
	"github.com/karadarhythm/health-api/internal/service/mission"
	"github.com/karadarhythm/health-api/internal/service/nutrition"
	"github.com/karadarhythm/health-api/internal/service/recipe"
	"github.com/karadarhythm/health-api/internal/service/risk"
	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/internal/service/visit"
	"github.com/karadarhythm/health-api/internal/service/weight"
	"github.com/karadarhythm/health-api/pkg/logger"
)

func main() {
	logger.Setup(logger.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	// Repositories
	bpRepo := postgres.NewBloodPressureRepository(db)
	weightRepo := postgres.NewWeightRepository(db)
	foodRepo := postgres.NewFoodLogRepository(db)
	conditionRepo := postgres.NewConditionRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)
	visitRepo := postgres.NewMedicalVisitRepository(db)
	exerciseRepo := postgres.NewExerciseLogRepository(db)
	missionRepo := postgres.NewMissionRepository(db)
	streakRepo := postgres.NewStreakRepository(db)

	// Services
	streakSvc := streak.NewService(streakRepo, nil)
	bpSvc := bloodpressure.NewService(bpRepo, streakSvc, nil)
	weightSvc := weight.NewService(weightRepo, nil)
	recipeSvc := recipe.NewService(recipeRepo)
	nutritionSvc := nutrition.NewService(foodRepo, recipeRepo, cfg.Targets)
	foodlogSvc := foodlog.NewService(foodRepo, recipeRepo, streakSvc, nil)
	conditionSvc := condition.NewService(conditionRepo, streakSvc, nil)
	visitSvc := visit.NewService(visitRepo, nil)
	exerciseSvc := exercise.NewService(exerciseRepo, nil)
	missionSvc := mission.NewService(missionRepo, streakSvc, nil, nil)
	riskSvc := risk.NewService(bpSvc, weightSvc, visitSvc, cfg.Profile)
	analyticsSvc := analytics.NewService(bpRepo, weightRepo)
	adviceSvc := advice.NewService(bpSvc, nutritionSvc, exerciseSvc, conditionSvc, visitSvc, cfg.Profile, nil)

	if err := recipeSvc.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed recipes")
	}

	r := router.New(router.Config{
		TimeoutSeconds: cfg.Server.TimeoutSeconds,
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
		ReadyCheck:     db.Ping,
	})
	r.Register(
		bloodpressureHandler.NewHandler(bpSvc),
		weightHandler.NewHandler(weightSvc),
		foodlogHandler.NewHandler(foodlogSvc, nutritionSvc, nil),
		conditionHandler.NewHandler(conditionSvc),
		visitHandler.NewHandler(visitSvc),
		recipeHandler.NewHandler(recipeSvc),
		missionHandler.NewHandler(missionSvc),
		streakHandler.NewHandler(streakSvc),
		insight.NewHandler(adviceSvc, riskSvc, analyticsSvc),
		exerciseHandler.NewHandler(exerciseSvc),
	)
	r.RegisterCached(catalogs.NewHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
