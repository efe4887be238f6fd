package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "rsvpportal/docs"
	"rsvpportal/internal/delivery/http/controllers"
	"rsvpportal/internal/delivery/http/middleware"
	"rsvpportal/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth          *controllers.AuthController
	Events        *controllers.EventController
	Invitation    *controllers.InvitationController
	Public        *controllers.PublicController
	Invites       *controllers.InviteController
	Analytics     *controllers.AnalyticsController
	EmailTemplate *controllers.EmailTemplateController
}

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	Verifier       domain.SessionVerifier
	Revocations    middleware.RevocationChecker
	Gatherer       prometheus.Gatherer
	Metrics        *middleware.HTTPMetrics
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(cfg.Verifier, cfg.Revocations, cfg.Logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", authed(c.Auth.Logout))

	// Guest invitation links
	mux.HandleFunc("GET /invitations/{token}", c.Invitation.ViewInvitation)
	mux.HandleFunc("POST /invitations/{token}/rsvp", c.Invitation.SubmitInvitation)

	// Public RSVP links
	mux.HandleFunc("GET /public/events/{eventID}", c.Public.GetPublicEvent)
	mux.HandleFunc("GET /public/events/{eventID}/rsvp", c.Public.CheckPublicRSVP)
	mux.HandleFunc("POST /public/events/{eventID}/rsvp", c.Public.SubmitPublicRSVP)

	// Events and the user's own responses
	mux.HandleFunc("GET /events", authed(c.Events.ListEvents))
	mux.HandleFunc("POST /events", authed(c.Events.CreateEvent))
	mux.HandleFunc("GET /events/categories", authed(c.Events.Categories))
	mux.HandleFunc("GET /events/{eventID}", authed(c.Events.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}", authed(c.Events.UpdateEvent))
	mux.HandleFunc("GET /events/{eventID}/rsvp", authed(c.Events.GetMyRSVP))
	mux.HandleFunc("POST /events/{eventID}/rsvp", authed(c.Events.RespondRSVP))
	mux.HandleFunc("GET /rsvps", authed(c.Events.ListRSVPStatuses))

	// Host tools
	mux.HandleFunc("GET /events/{eventID}/invitations", authed(c.Invites.ListInvitations))
	mux.HandleFunc("POST /events/{eventID}/invitations", authed(c.Invites.CreateInvitation))
	mux.HandleFunc("GET /events/{eventID}/analytics", authed(c.Analytics.EventAnalytics))
	mux.HandleFunc("GET /email-templates", authed(c.EmailTemplate.GetTemplate))
	mux.HandleFunc("POST /email-templates", authed(c.EmailTemplate.SaveTemplate))
	mux.HandleFunc("POST /email-templates/logo", authed(c.EmailTemplate.UploadLogo))

	// Ops
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	if cfg.Metrics != nil {
		handler = cfg.Metrics.Wrap(handler)
	}
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	return middleware.CORS(cfg.AllowedOrigins, handler)
}
