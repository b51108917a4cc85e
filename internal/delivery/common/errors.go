package common

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kerim-dauren/hostname/internal/domain"
)

var clientErrors = []error{
	domain.ErrEmptyHost,
	domain.ErrInvalidHost,
	domain.ErrInvalidDomain,
	domain.ErrInvalidLabel,
	domain.ErrInvalidPort,
	domain.ErrInvalidArgument,
	domain.ErrNormalizationFailed,
	domain.ErrInvalidHostList,
}

// IsClientError reports whether err was caused by bad caller input.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func MapDomainErrorToHTTP(err error) int {
	if IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func MapDomainErrorToGRPC(err error) codes.Code {
	if IsClientError(err) {
		return codes.InvalidArgument
	}
	return codes.Internal
}

// ErrorMessage returns the text shown to callers. Internal failures are not
// described.
func ErrorMessage(err error) string {
	if IsClientError(err) {
		return err.Error()
	}
	return "Internal server error"
}

func NewGRPCError(err error) error {
	return status.Error(MapDomainErrorToGRPC(err), ErrorMessage(err))
}
