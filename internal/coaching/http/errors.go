package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

// writeServiceError converts a service-layer error into the shared
// failure envelope. Anything unrecognised is logged and reported as a
// plain internal error.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var statusErr *service.InvalidStatusError
	var apiErr *coachsdk.APIError

	switch {
	case errors.As(err, &apiErr):
		apiErr.WriteError(w)

	case errors.As(err, &statusErr):
		coachsdk.InvalidStatusError(string(statusErr.Status)).WriteError(w)

	case errors.Is(err, service.ErrInvalidInvitationRequest),
		errors.Is(err, service.ErrInvalidUserRequest),
		errors.Is(err, service.ErrSelfPairing),
		errors.Is(err, service.ErrSameRole),
		errors.Is(err, service.ErrRelationshipNotPending):
		coachsdk.ErrInvalidRequest.WriteError(w)

	case errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrRelationshipNotFound),
		errors.Is(err, service.ErrUserNotFound):
		coachsdk.ErrNotFound.WriteError(w)

	case errors.Is(err, service.ErrInvitationInvalid):
		coachsdk.InvalidInvitationError().WriteError(w)

	case errors.Is(err, service.ErrNotInviter),
		errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotCounterpart),
		errors.Is(err, service.ErrRoleMismatch):
		coachsdk.ErrForbidden.WriteError(w)

	case errors.Is(err, service.ErrResendLimit):
		coachsdk.ErrResendLimit.WriteError(w)

	case errors.Is(err, service.ErrEmailTaken):
		coachsdk.ErrEmailTaken.WriteError(w)

	case errors.Is(err, service.ErrInvalidCredentials):
		coachsdk.ErrInvalidCredentials.WriteError(w)

	default:
		slogx.FromContext(ctx).Error("unhandled service error", "err", err)
		coachsdk.ErrInternal.WriteError(w)
	}
}
