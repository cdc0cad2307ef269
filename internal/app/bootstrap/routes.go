// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	attendancefeature "github.com/dalemusser/rollcall/internal/app/features/attendance"
	healthfeature "github.com/dalemusser/rollcall/internal/app/features/health"
	attendancestore "github.com/dalemusser/rollcall/internal/app/store/attendance"
	userstore "github.com/dalemusser/rollcall/internal/app/store/users"
	"github.com/dalemusser/rollcall/internal/app/system/auth"
	"github.com/dalemusser/rollcall/internal/app/system/dayclock"
	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Rollcall wires the bearer-token
// verifier as global middleware, then mounts the health and attendance
// feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewVerifier(appCfg.JWTSecret, logger)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}

	// ValidateConfig already vetted the zone; this cannot fail here.
	clock, err := dayclock.New(appCfg.TimeZone)
	if err != nil {
		return nil, err
	}

	errLog := httpjson.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads verified Claims into context when a
	// valid bearer token is presented. Route groups decide whether claims
	// are required.
	r.Use(verifier.LoadClaims)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Attendance marking, personal history, and monthly reporting
	attendanceHandler := attendancefeature.NewHandler(
		attendancestore.New(deps.MongoDatabase),
		userstore.New(deps.MongoDatabase),
		clock,
		errLog,
		logger,
	)
	r.Mount("/attendance", attendancefeature.Routes(attendanceHandler))

	return r, nil
}
