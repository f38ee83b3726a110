package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/httpx"
	"github.com/ultracoach/ultracoach/pkg/jwtx"
	"github.com/ultracoach/ultracoach/pkg/slogx"

	_ "github.com/ultracoach/ultracoach/api/coaching" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.EdDSASigner
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	UserService         *service.UserService
	SessionService      *service.SessionService
	InvitationService   *service.InvitationService
	RelationshipService *service.RelationshipService
}

func NewRouter(
	signer *jwtx.EdDSASigner,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerRelationships()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			UltraCoach Coaching Service API
//	@version		0.1.0
//	@description	Coach/runner invitation and relationship lifecycle service. Invitations carry a
//	@description	single-use secret token; only its SHA-256 fingerprint is ever stored. Sessions
//	@description	use EdDSA-signed JWT bearer tokens.
//
//	@contact.name				UltraCoach Team
//	@contact.url				https://github.com/ultracoach/ultracoach
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationHandler{InvitationService: r.InvitationService}

	// POST /invitations - moderate rate limit by user (authenticated mutation)
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invitations - lenient rate limit by user (authenticated read)
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /invitations/{id}/resend - moderate rate limit by user
	r.Mux.Handle("POST /v1/invitations/{id}/resend",
		httpx.Chain(http.HandlerFunc(h.HandleResend),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invitations/accept/{token} - moderate rate limit by IP.
	// Public endpoint, limited to slow down token enumeration attempts.
	r.Mux.Handle("GET /v1/invitations/accept/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /invitations/accept/{token} - moderate rate limit by user
	r.Mux.Handle("POST /v1/invitations/accept/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /invitations/decline/{token} - moderate rate limit by IP (public)
	r.Mux.Handle("POST /v1/invitations/decline/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleDecline),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRelationships() {
	h := &RelationshipHandler{RelationshipService: r.RelationshipService}

	// POST /relationships/connect - moderate rate limit by user
	r.Mux.Handle("POST /v1/relationships/connect",
		httpx.Chain(http.HandlerFunc(h.HandleConnect),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /relationships - lenient rate limit by user
	r.Mux.Handle("GET /v1/relationships",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /relationships/{id}/approve - moderate rate limit by user
	r.Mux.Handle("POST /v1/relationships/{id}/approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /relationships/{id} - moderate rate limit by user
	r.Mux.Handle("DELETE /v1/relationships/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDeactivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
