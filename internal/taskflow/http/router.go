package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskflowhq/taskflow/internal/taskflow/domain"
	"github.com/taskflowhq/taskflow/internal/taskflow/service"
	"github.com/taskflowhq/taskflow/internal/taskflow/store"
	"github.com/taskflowhq/taskflow/pkg/httpx"
	"github.com/taskflowhq/taskflow/pkg/jwtx"
	"github.com/taskflowhq/taskflow/pkg/slogx"
	"github.com/taskflowhq/taskflow/web"

	_ "github.com/taskflowhq/taskflow/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	UserService  *service.UserService
	TokenService *service.TokenService
	TaskService  *service.TaskService
	MFAService   *service.MFAService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerTasks()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", web.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskFlow API
//	@version		0.1.0
//	@description	Task tracking service with token-based authentication.
//	@description
//	@description				Session tokens are JWTs signed with Ed25519. Obtain one via /api/v1/auth/login
//	@description				and present it as a bearer token on the protected endpoints.
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
	// POST /register - strict rate limit (account creation)
	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(&RegisterHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(&LoginHandler{UserService: r.UserService, TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	mfaHandler := &MFAHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
		MFAService:   r.MFAService,
	}

	// POST /mfa - completes a challenge, same budget as login
	r.Mux.Handle("POST /api/v1/auth/mfa",
		httpx.Chain(http.HandlerFunc(mfaHandler.HandleCompleteLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/v1/auth/mfa/enroll",
		httpx.Chain(http.HandlerFunc(mfaHandler.HandleEnroll),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/v1/auth/mfa/activate",
		httpx.Chain(http.HandlerFunc(mfaHandler.HandleActivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/auth/me",
		httpx.Chain(&MeHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTasks() {
	tasksHandler := &TasksHandler{TaskService: r.TaskService}
	taskItemHandler := &TaskItemHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /api/v1/tasks",
		httpx.Chain(http.HandlerFunc(tasksHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /api/v1/tasks",
		httpx.Chain(http.HandlerFunc(tasksHandler.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PUT /api/v1/tasks/{id}",
		httpx.Chain(http.HandlerFunc(taskItemHandler.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /api/v1/tasks/{id}",
		httpx.Chain(http.HandlerFunc(taskItemHandler.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	r.Mux.Handle("GET /api/v1/admin/users",
		httpx.Chain(&AdminUsersHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
