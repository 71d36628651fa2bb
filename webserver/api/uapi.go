// Binds onto eureka uapi
package api

import (
	"context"
	"net/http"

	"github.com/infinitybotlist/eureka/uapi"
	"github.com/kulthx/botconfig/types"
	"github.com/kulthx/botconfig/webserver/constants"
	"go.uber.org/zap"
)

type DefaultResponder struct{}

func (d DefaultResponder) New(err string, ctx map[string]string) any {
	return types.ApiError{
		Error: err,
	}
}

// Authorize lets every request through. Callers of this API are not
// authenticated.
func Authorize(r uapi.Route, req *http.Request) (uapi.AuthData, uapi.HttpResponse, bool) {
	return uapi.AuthData{}, uapi.HttpResponse{}, true
}

func Setup(logger *zap.Logger, ctx context.Context) {
	uapi.SetupState(uapi.UAPIState{
		Logger:      logger,
		Authorize:   Authorize,
		AuthTypeMap: map[string]string{},
		Context:     ctx,
		Constants: &uapi.UAPIConstants{
			ResourceNotFound:    constants.ResourceNotFound,
			BadRequest:          constants.BadRequest,
			Forbidden:           constants.Forbidden,
			Unauthorized:        constants.Unauthorized,
			InternalServerError: constants.InternalServerError,
			MethodNotAllowed:    constants.MethodNotAllowed,
			BodyRequired:        constants.BodyRequired,
		},
		DefaultResponder: DefaultResponder{},
	})
}
