package types

// UpdateBotToken is the body of a token update
type UpdateBotToken struct {
	Token string `json:"token" description:"The bot token. Must contain exactly two '.' separated parts after trimming"`
}

type UpdateBotTokenResponse struct {
	Success bool   `json:"success" description:"Always true on success"`
	Message string `json:"message" description:"Human readable status message"`
}

// BotStatus is a simulated status. The counters are fixed placeholders and
// are not measured from a live connection.
type BotStatus struct {
	Connected        bool   `json:"connected" description:"Whether a bot token has been configured"`
	Servers          int    `json:"servers" description:"Number of servers the bot is in"`
	Users            int    `json:"users" description:"Number of users the bot can see"`
	ScriptsProtected int    `json:"scripts_protected" description:"Number of scripts under protection"`
	Uptime           string `json:"uptime" description:"Bot uptime"`
	LastUpdated      string `json:"last_updated" description:"Unix timestamp (seconds) of the last token update, or empty"`
}

// SafeBotConfig is the bot config with the token redacted
type SafeBotConfig struct {
	HasToken    bool   `json:"has_token" description:"Whether a bot token has been configured"`
	LastUpdated string `json:"last_updated" description:"Unix timestamp (seconds) of the last token update, or empty"`
	Prefix      string `json:"prefix" description:"Command prefix"`
	MaxScripts  int    `json:"max_scripts" description:"Maximum number of scripts"`
}
