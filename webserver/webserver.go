package webserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
	"github.com/infinitybotlist/eureka/zapchi"
	jsoniter "github.com/json-iterator/go"
	"github.com/kulthx/botconfig/types"
	"github.com/kulthx/botconfig/webserver/api"
	"github.com/kulthx/botconfig/webserver/constants"
	"github.com/kulthx/botconfig/webserver/routes/bot"
	"github.com/kulthx/botconfig/webserver/state"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Simple allow-all middleware to handle CORS, also caps the request body size
func corsMiddleware(maxBodySize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// limit body to maxBodySize bytes
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

			origin := r.Header.Get("Origin")

			if origin == "" {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Headers", "X-Client, Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

			if r.Method == "OPTIONS" {
				w.Write([]byte{})
				return
			}

			w.Header().Set("Content-Type", "application/json")

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	bytes, err := json.Marshal(types.ApiError{Error: msg})

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	w.Write(bytes)
}

func CreateWebserver(s *state.State) *chi.Mux {
	docs.DocsSetupData = &docs.SetupData{
		URL:         s.Config.Meta.APIURL + s.Config.Meta.BasePath,
		ErrorStruct: types.ApiError{},
		Info: docs.Info{
			Title:       "Bot Config API",
			Version:     "1.0",
			Description: "Stores the bot token and exposes the bot status and a redacted view of its config.",
		},
	}

	docs.Setup()

	api.Setup(s.Logger, s.Context)

	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		corsMiddleware(s.Config.Meta.MaxBodySize),
		zapchi.Logger(s.Logger, "api"),
		middleware.Timeout(30*time.Second),
	)

	// Set before mounting so the bot sub-router inherits them
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, constants.EndpointNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, constants.MethodNotAllowed)
	})

	routes := r

	if s.Config.Meta.BasePath != "" {
		routes = chi.NewRouter()
		r.Mount(s.Config.Meta.BasePath, routes)
	}

	routers := []uapi.APIRouter{
		bot.Router{State: s},
	}

	for _, router := range routers {
		name, desc := router.Tag()
		if name != "" {
			docs.AddTag(name, desc)
			uapi.State.SetCurrentTag(name)
		} else {
			panic("Router tag name cannot be empty")
		}

		router.Routes(routes)
	}

	// Marshalled once here to avoid doing it on every request
	openapi, err := json.Marshal(docs.GetSchema())

	if err != nil {
		panic(err)
	}

	r.Get("/openapi", func(w http.ResponseWriter, r *http.Request) {
		w.Write(openapi)
	})

	return r
}
