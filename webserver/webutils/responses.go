package webutils

import (
	"context"
	"fmt"
	"net/http"

	"github.com/infinitybotlist/eureka/uapi"
	"github.com/kulthx/botconfig/configstore"
	"github.com/kulthx/botconfig/types"
	"go.uber.org/zap"
)

type RouteHandler = func(d uapi.RouteData, r *http.Request) uapi.HttpResponse

// InvalidRequest is returned when client supplied data fails validation
func InvalidRequest(msg string) uapi.HttpResponse {
	return uapi.HttpResponse{
		Status: http.StatusBadRequest,
		Json:   types.ApiError{Error: msg},
	}
}

// StorageError is returned when the config could not be persisted
func StorageError(msg string) uapi.HttpResponse {
	return uapi.HttpResponse{
		Status: http.StatusInternalServerError,
		Json:   types.ApiError{Error: msg},
	}
}

// UnexpectedError surfaces err's message to the caller as-is
func UnexpectedError(err error) uapi.HttpResponse {
	return uapi.HttpResponse{
		Status: http.StatusInternalServerError,
		Json:   types.ApiError{Error: err.Error()},
	}
}

// Recover turns a panic inside h into an UnexpectedError response.
func Recover(logger *zap.Logger, h RouteHandler) RouteHandler {
	return func(d uapi.RouteData, r *http.Request) (resp uapi.HttpResponse) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Recovered from panic in handler", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				resp = UnexpectedError(fmt.Errorf("%v", rec))
			}
		}()

		return h(d, r)
	}
}

// LoadDocument reads the current document. Store failures are already soft
// and logged by the store, so the only error is ctx ending before the read.
func LoadDocument(ctx context.Context, store configstore.Store) (configstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, _ := store.Load(ctx)

	return doc, nil
}
