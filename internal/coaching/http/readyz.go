package http

import (
	"net/http"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
	"github.com/ultracoach/ultracoach/pkg/httpx"
	"github.com/ultracoach/ultracoach/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of database and session signer components
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	coachsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	coachsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer *jwtx.EdDSASigner,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &coachsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if signer == nil || !signer.Ready() {
			checks.Signer = "error: no signing key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, coachsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
