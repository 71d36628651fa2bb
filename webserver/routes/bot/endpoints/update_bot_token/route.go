package update_bot_token

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/kulthx/botconfig/types"
	"github.com/kulthx/botconfig/webserver/state"
	"github.com/kulthx/botconfig/webserver/webutils"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrTokenRequired = errors.New("Token is required")
	ErrTokenEmpty    = errors.New("Token cannot be empty")
	ErrTokenFormat   = errors.New("Invalid token format")
	ErrTokenNotText  = errors.New("Token must be a string")
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Update Bot Token",
		Description: "Stores a new bot token. The token is only checked to have three ``.`` separated parts, it is not verified against Discord.",
		Req:         types.UpdateBotToken{},
		Resp:        types.UpdateBotTokenResponse{},
	}
}

// CheckToken trims token and checks it has the shape of a bot token.
func CheckToken(token string) (string, error) {
	token = strings.TrimSpace(token)

	if token == "" {
		return "", ErrTokenEmpty
	}

	if strings.Count(token, ".") != 2 {
		return "", ErrTokenFormat
	}

	return token, nil
}

// readToken pulls the token field out of the request body.
func readToken(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", ErrTokenRequired
	}

	body, err := io.ReadAll(r.Body)

	if err != nil {
		return "", err
	}

	var payload map[string]any

	if err := json.Unmarshal(body, &payload); err != nil {
		return "", ErrTokenRequired
	}

	v, ok := payload["token"]

	if !ok {
		return "", ErrTokenRequired
	}

	token, ok := v.(string)

	if !ok {
		return "", ErrTokenNotText
	}

	return token, nil
}

func Route(s *state.State) webutils.RouteHandler {
	return func(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
		raw, err := readToken(r)

		if err != nil {
			var maxErr *http.MaxBytesError

			switch {
			case errors.As(err, &maxErr):
				return uapi.HttpResponse{
					Status: http.StatusRequestEntityTooLarge,
					Json:   types.ApiError{Error: "Request body too large"},
				}
			case errors.Is(err, ErrTokenRequired), errors.Is(err, ErrTokenNotText):
				return webutils.InvalidRequest(err.Error())
			default:
				return webutils.UnexpectedError(err)
			}
		}

		token, err := CheckToken(raw)

		if err != nil {
			return webutils.InvalidRequest(err.Error())
		}

		doc, err := webutils.LoadDocument(d.Context, s.Store)

		if err != nil {
			return webutils.UnexpectedError(err)
		}

		doc.SetToken(token, s.Now())

		err = s.Store.Save(d.Context, doc)

		if err != nil {
			return webutils.StorageError("Failed to save token")
		}

		s.Logger.Info("Bot token updated", zap.String("last_updated", doc.LastUpdated()))

		s.Notifier.TokenUpdated(d.Context, doc.LastUpdated())

		return uapi.HttpResponse{
			Json: types.UpdateBotTokenResponse{
				Success: true,
				Message: "Bot token updated successfully",
			},
		}
	}
}
