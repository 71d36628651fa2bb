package bot

import (
	"github.com/go-chi/chi/v5"
	"github.com/infinitybotlist/eureka/uapi"
	"github.com/kulthx/botconfig/webserver/routes/bot/endpoints/get_bot_config"
	"github.com/kulthx/botconfig/webserver/routes/bot/endpoints/get_bot_status"
	"github.com/kulthx/botconfig/webserver/routes/bot/endpoints/update_bot_token"
	"github.com/kulthx/botconfig/webserver/state"
	"github.com/kulthx/botconfig/webserver/webutils"
)

const tagName = "Bot"

type Router struct {
	State *state.State
}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints manage the bot token and read the bot status and config"
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: "/token",
		OpId:    "update_bot_token",
		Method:  uapi.POST,
		Docs:    update_bot_token.Docs,
		Handler: webutils.Recover(b.State.Logger, update_bot_token.Route(b.State)),
	}.Route(r)

	uapi.Route{
		Pattern: "/status",
		OpId:    "get_bot_status",
		Method:  uapi.GET,
		Docs:    get_bot_status.Docs,
		Handler: webutils.Recover(b.State.Logger, get_bot_status.Route(b.State)),
	}.Route(r)

	uapi.Route{
		Pattern: "/config",
		OpId:    "get_bot_config",
		Method:  uapi.GET,
		Docs:    get_bot_config.Docs,
		Handler: webutils.Recover(b.State.Logger, get_bot_config.Route(b.State)),
	}.Route(r)
}
