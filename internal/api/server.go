package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumixed/habitflow/internal/service"
)

type Server struct {
	mx            *chi.Mux
	userService   service.UserServiceI
	habitService  service.HabitsServiceI
	rewardService service.RewardServiceI
	jwtService    JWTServiceI
}

type ServicesList struct {
	UserService   service.UserServiceI
	HabitsService service.HabitsServiceI
	RewardService service.RewardServiceI
	JwtService    JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:            chi.NewMux(),
		userService:   servicesOptions.UserService,
		habitService:  servicesOptions.HabitsService,
		rewardService: servicesOptions.RewardService,
		jwtService:    servicesOptions.JwtService,
	}
}

func (s *Server) Routes() http.Handler {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/complete", s.CompleteHabit)
			r.Delete("/habits/{id}/complete", s.UncompleteHabit)
			r.Post("/habits/{id}/freeze", s.FreezeStreak)
			r.Get("/habits/{id}/streak", s.GetStreak)
			r.Get("/habits/{id}/completions", s.GetCompletions)
			r.Delete("/me", s.DeleteAccount)
			r.Get("/me/stats", s.GetStats)
			r.Get("/leaderboard", s.GetLeaderboard)
		})
	})
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.Routes())
}
