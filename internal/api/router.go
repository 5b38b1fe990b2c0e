package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/church-backend/internal/api/handlers"
	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/config"
	"github.com/baharkarakas/church-backend/internal/metrics"
	"github.com/baharkarakas/church-backend/internal/middleware"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/services"
)

type RouterDeps struct {
	Cfg config.Config
	Log *slog.Logger
	TM  *auth.TokenManager

	Auth       *services.AuthService
	People     *services.PeopleService
	Events     *services.EventService
	Finance    *services.FinanceService
	Pastoral   *services.PastoralService
	Volunteers *services.VolunteerService
	Liturgy    *services.LiturgyService
	Biometric  *services.BiometricService
	Dashboard  *services.DashboardService
}

func NewRouter(d RouterDeps) http.Handler {
	authH := handlers.NewAuthHandler(d.Auth, d.Log)
	peopleH := handlers.NewPeopleHandler(d.People, d.Log)
	eventsH := handlers.NewEventsHandler(d.Events, d.Log)
	financeH := handlers.NewFinanceHandler(d.Finance, d.Log)
	pastoralH := handlers.NewPastoralHandler(d.Pastoral, d.Log)
	volunteersH := handlers.NewVolunteersHandler(d.Volunteers, d.Log)
	liturgyH := handlers.NewLiturgyHandler(d.Liturgy, d.Log)
	meH := handlers.NewMeHandler(d.Biometric, d.Dashboard, d.Log)
	webhookH := handlers.NewWebhookHandler(d.Pastoral, d.Events, d.Volunteers, d.Log)
	authMW := middleware.NewAuthMiddleware(d.TM)

	staff := middleware.RequireRole(models.RoleAdmin, models.RolePastor, models.RoleTreasurer, models.RoleLeader)
	ministry := middleware.RequireRole(models.RoleAdmin, models.RolePastor, models.RoleLeader)
	treasury := middleware.RequireRole(models.RoleAdmin, models.RoleTreasurer)

	r := chi.NewRouter()
	if d.Cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.RequestID,
		middleware.Recover(d.Log),
		middleware.HTTPMetrics,
		middleware.RateLimit(d.Cfg.RateRPS, d.Cfg.RateBurst),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader, middleware.WebhookSecretHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/webhooks", func(r chi.Router) {
		r.Use(middleware.WebhookMetrics, middleware.WebhookSecret(d.Cfg.WebhookSecret))
		r.Post("/prayer-requests", webhookH.PrayerRequest)
		r.Post("/testimonies", webhookH.Testimony)
		r.Post("/checkin", webhookH.CheckIn)
		r.Post("/volunteers", webhookH.Volunteer)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		// ---------- public ----------
		r.Route("/public", func(r chi.Router) {
			r.Get("/events/{id}", eventsH.PublicGet)
			r.Post("/events/{id}/registrations", eventsH.PublicRegister)
			r.Get("/churches/{churchID}/testimonies", pastoralH.PublicTestimonies)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)

			// ---------- me ----------
			r.Post("/me/biometric", meH.EnrollBiometric)
			r.Get("/me/biometric", meH.ListBiometric)
			r.Delete("/me/biometric/{id}", meH.RemoveBiometric)
			r.With(staff).Get("/dashboard", meH.GetDashboard)

			// ---------- people ----------
			r.Route("/people", func(r chi.Router) {
				r.Use(ministry)
				r.Post("/", peopleH.Create)
				r.Get("/", peopleH.List)
				r.Get("/{id}", peopleH.Get)
				r.Put("/{id}", peopleH.Update)
				r.Delete("/{id}", peopleH.Delete)
				r.Post("/{id}/avatar", peopleH.UploadAvatar)
				r.Get("/{id}/links", peopleH.Links)
			})

			// ---------- events ----------
			r.Route("/events", func(r chi.Router) {
				r.Use(ministry)
				r.Post("/", eventsH.Create)
				r.Get("/", eventsH.List)
				r.Get("/{id}", eventsH.Get)
				r.Post("/{id}/tiers", eventsH.CreateTier)
				r.Get("/{id}/tiers", eventsH.ListTiers)
				r.Get("/{id}/registrations", eventsH.ListRegistrations)
				r.Post("/{id}/registrations/{rid}/cancel", eventsH.CancelRegistration)
			})

			// ---------- finance ----------
			r.Route("/finance", func(r chi.Router) {
				r.Use(treasury)
				r.Post("/accounts", financeH.CreateAccount)
				r.Get("/accounts", financeH.ListAccounts)
				r.Get("/accounts/{id}/reconciliation", financeH.Reconcile)
				r.Post("/transactions", financeH.CreateTransaction)
				r.Get("/transactions", financeH.ListTransactions)
				r.Get("/summary", financeH.Summary)
			})

			// ---------- pastoral ----------
			r.Group(func(r chi.Router) {
				r.Use(ministry)
				r.Get("/prayer-requests", pastoralH.ListPrayers)
				r.Get("/prayer-requests/{id}", pastoralH.GetPrayer)
				r.Patch("/prayer-requests/{id}", pastoralH.MovePrayer)
				r.Get("/testimonies", pastoralH.ListTestimonies)
				r.Patch("/testimonies/{id}", pastoralH.ModerateTestimony)
				r.Get("/volunteers", volunteersH.List)
				r.Patch("/volunteers/{id}", volunteersH.Move)
			})

			// ---------- liturgy ----------
			r.Group(func(r chi.Router) {
				r.Use(ministry)
				r.Post("/liturgies", liturgyH.Create)
				r.Get("/liturgies", liturgyH.List)
				r.Post("/liturgies/{id}/items", liturgyH.AddItem)
				r.Get("/liturgies/{id}/playlist", liturgyH.Playlist)
				r.Post("/songs", liturgyH.CreateSong)
				r.Get("/songs", liturgyH.ListSongs)
				r.Post("/announcements", liturgyH.CreateAnnouncement)
				r.Get("/announcements", liturgyH.ListAnnouncements)
			})
		})
	})

	return r
}
