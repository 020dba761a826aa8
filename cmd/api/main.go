// @title HabitFlow API
// @description Habit-tracking API with a gamified completion reward engine
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/lumixed/habitflow/internal/activity"
	"github.com/lumixed/habitflow/internal/api"
	"github.com/lumixed/habitflow/internal/repository"
	"github.com/lumixed/habitflow/internal/service"
	"github.com/lumixed/habitflow/pkg/cleanup"
	"github.com/lumixed/habitflow/pkg/config"
	jwtservice "github.com/lumixed/habitflow/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := repository.RunMigrations(context.Background(), &dbCfg); err != nil {
		log.Fatal("migrations error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	completionsRepo := repository.NewCompletionsRepo(&dbCfg)
	gamificationRepo := repository.NewGamificationRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	habitService := service.NewHabitsService(habitsRepo)
	rewardService := service.NewRewardService(
		usersRepo,
		habitsRepo,
		completionsRepo,
		gamificationRepo,
		activity.NewSlogLogger(slog.Default()),
		service.NoFriends{},
	)

	// stand-in for the external scheduler that triggers the broken-streak sweep
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
			if err := rewardService.ResetBrokenStreaks(ctx); err != nil {
				slog.Error("broken-streak sweep failed", slog.String("error", err.Error()))
			}
			cancel()
		}
	}()

	serv := api.New(&api.ServicesList{
		UserService:   userService,
		HabitsService: habitService,
		RewardService: rewardService,
		JwtService:    jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
