package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/httpx"
	"github.com/cosahq/cosa/pkg/slogx"

	_ "github.com/cosahq/cosa/api/cosa" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AccountService     *service.AccountService
	SessionService     *service.SessionService
	GateService        *service.GateService
	JobService         *service.JobService
	ReportService      *service.ReportService
	ApplicationService *service.ApplicationService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerJobs()
	r.registerReports()
	r.registerApplications()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			COSA Co-op Service API
//	@version		0.1.0
//	@description	Authentication, session and record management for the co-op placement
//	@description	service. Sessions are opaque bearer tokens promoted through a mandatory
//	@description	TOTP second factor; role authority is snapshotted at login.
//
//	@contact.name				COSA Team
//	@contact.url				https://github.com/cosahq/cosa
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
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Accounts: r.AccountService,
		Sessions: r.SessionService,
	}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential guessing surface)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/verify - strict rate limit by IP; the session itself also
	// carries a hard attempt budget, this just slows sweeps across tokens.
	r.Mux.Handle("POST /v1/auth/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - no session gate: logout is unconditional and works
	// on pending, authenticated and unknown tokens alike.
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	// GET /me - any authenticated session, lenient rate limit by user
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(MeHandler(r.AccountService),
			RequireSession(r.GateService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	h := &UsersHandler{Accounts: r.AccountService}

	// Account administration is admin-only, moderate rate limit by user
	admin := func(hf http.HandlerFunc) http.Handler {
		return httpx.Chain(hf,
			RequireSession(r.GateService, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users", admin(h.HandleList))
	r.Mux.Handle("GET /v1/users/{id}", admin(h.HandleGet))
	r.Mux.Handle("PATCH /v1/users/{id}/active", admin(h.HandleSetActive))
	r.Mux.Handle("PATCH /v1/users/{id}/role", admin(h.HandleSetRole))
	r.Mux.Handle("DELETE /v1/users/{id}", admin(h.HandleDelete))
}

func (r *Router) registerJobs() {
	h := &JobsHandler{Jobs: r.JobService}

	// POST /jobs - employers only
	r.Mux.Handle("POST /v1/jobs",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireSession(r.GateService, domain.RoleEmployer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /jobs - the board is readable by every authenticated role
	r.Mux.Handle("GET /v1/jobs",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireSession(r.GateService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /jobs/mine - employer's own postings
	r.Mux.Handle("GET /v1/jobs/mine",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			RequireSession(r.GateService, domain.RoleEmployer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerReports() {
	h := &ReportsHandler{Reports: r.ReportService}

	// POST /reports - students submit work term reports
	r.Mux.Handle("POST /v1/reports",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireSession(r.GateService, domain.RoleStudent),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /reports - staff review surface
	r.Mux.Handle("GET /v1/reports",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireSession(r.GateService, domain.RoleCoordinator, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /reports/mine - student's own submissions
	r.Mux.Handle("GET /v1/reports/mine",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			RequireSession(r.GateService, domain.RoleStudent),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerApplications() {
	h := &ApplicationsHandler{Applications: r.ApplicationService}

	// POST /applications - students apply to the co-op program
	r.Mux.Handle("POST /v1/applications",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireSession(r.GateService, domain.RoleStudent),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /applications/mine - student's own application
	r.Mux.Handle("GET /v1/applications/mine",
		httpx.Chain(http.HandlerFunc(h.HandleGetMine),
			RequireSession(r.GateService, domain.RoleStudent),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /applications + PATCH /applications/{id}/status - staff review
	r.Mux.Handle("GET /v1/applications",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireSession(r.GateService, domain.RoleCoordinator, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/applications/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleSetStatus),
			RequireSession(r.GateService, domain.RoleCoordinator, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
