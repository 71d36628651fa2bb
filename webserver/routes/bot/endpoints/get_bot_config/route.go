package get_bot_config

import (
	"net/http"

	"github.com/kulthx/botconfig/configstore"
	"github.com/kulthx/botconfig/types"
	"github.com/kulthx/botconfig/webserver/state"
	"github.com/kulthx/botconfig/webserver/webutils"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Bot Config",
		Description: "Returns the bot config. The token itself is never returned, only whether one is set.",
		Resp:        types.SafeBotConfig{},
	}
}

// SafeConfig returns the redacted view of doc
func SafeConfig(doc configstore.Document) types.SafeBotConfig {
	return types.SafeBotConfig{
		HasToken:    doc.HasToken(),
		LastUpdated: doc.LastUpdated(),
		Prefix:      doc.Prefix(),
		MaxScripts:  doc.MaxScripts(),
	}
}

func Route(s *state.State) webutils.RouteHandler {
	return func(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
		doc, err := webutils.LoadDocument(d.Context, s.Store)

		if err != nil {
			return webutils.UnexpectedError(err)
		}

		return uapi.HttpResponse{
			Json: SafeConfig(doc),
		}
	}
}
