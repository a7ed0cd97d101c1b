package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/staffdesk/apiserver/config"
	"github.com/staffdesk/apiserver/internal/auth"
	"github.com/staffdesk/apiserver/internal/db"
	"github.com/staffdesk/apiserver/internal/handlers"
	"github.com/staffdesk/apiserver/internal/services"
	"github.com/staffdesk/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	mongo      *db.Mongo
}

// New connects to the store, wires repositories, services, and handlers, and
// builds the router. The signing secret is mandatory.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	mongo, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx); err != nil {
		_ = mongo.Close(context.Background())
		return nil, err
	}

	userRepo := store.NewUserRepository(mongo)
	employeeRepo := store.NewEmployeeRepository(mongo)
	attendanceRepo := store.NewAttendanceRepository(mongo)
	leaveRepo := store.NewLeaveRepository(mongo)

	userService := services.NewUserService(userRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveService := services.NewLeaveService(leaveRepo, employeeRepo)
	dashboardService := services.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo)

	credentials := auth.NewCredentials(jwtSecret)
	requireAuth := handlers.RequireAuth(credentials, userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, attendanceService)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			handlers.AuthRouter(r, userService, credentials, requireAuth)
		})
		r.Route("/employees", func(r chi.Router) {
			handlers.EmployeeRouter(r, employeeService, requireAuth)
		})
		r.Route("/attendance", func(r chi.Router) {
			handlers.AttendanceRouter(r, attendanceService, requireAuth)
		})
		r.Route("/leaves", func(r chi.Router) {
			handlers.LeaveRouter(r, leaveService, requireAuth)
		})
		r.Route("/dashboard", func(r chi.Router) {
			handlers.DashboardRouter(r, dashboardHandler, requireAuth)
		})
		r.Route("/reports", func(r chi.Router) {
			handlers.ReportsRouter(r, dashboardHandler, requireAuth)
		})
	})

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		mongo:      mongo,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.mongo != nil {
		_ = s.mongo.Close(context.Background())
	}
	return s.httpServer.Close()
}
