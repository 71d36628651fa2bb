package get_bot_status

import (
	"net/http"

	"github.com/kulthx/botconfig/configstore"
	"github.com/kulthx/botconfig/types"
	"github.com/kulthx/botconfig/webserver/state"
	"github.com/kulthx/botconfig/webserver/webutils"

	docs "github.com/infinitybotlist/eureka/doclib"
	"github.com/infinitybotlist/eureka/uapi"
)

// Placeholder figures reported while a token is configured. Clients of the
// control panel depend on these exact values.
const (
	connectedServers          = 1
	connectedUsers            = 150
	connectedScriptsProtected = 25
	connectedUptime           = "5m"
	disconnectedUptime        = "0m"
)

func Docs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Bot Status",
		Description: "Returns a simulated bot status. No live connection is checked, the bot counts as connected as soon as a token is configured.",
		Resp:        types.BotStatus{},
	}
}

// Status builds the simulated status for doc.
func Status(doc configstore.Document) types.BotStatus {
	if !doc.HasToken() {
		return types.BotStatus{
			Uptime:      disconnectedUptime,
			LastUpdated: doc.LastUpdated(),
		}
	}

	return types.BotStatus{
		Connected:        true,
		Servers:          connectedServers,
		Users:            connectedUsers,
		ScriptsProtected: connectedScriptsProtected,
		Uptime:           connectedUptime,
		LastUpdated:      doc.LastUpdated(),
	}
}

func Route(s *state.State) webutils.RouteHandler {
	return func(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
		doc, err := webutils.LoadDocument(d.Context, s.Store)

		if err != nil {
			return webutils.UnexpectedError(err)
		}

		return uapi.HttpResponse{
			Json: Status(doc),
		}
	}
}
