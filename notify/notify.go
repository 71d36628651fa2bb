// Package notify holds the hook fired after the bot token changes.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// TokenNotifier is told when a new bot token has been saved.
type TokenNotifier interface {
	TokenUpdated(ctx context.Context, lastUpdated string)
}

// Nop does not tell anyone. There is no channel to a running bot yet, so
// this is the default.
type Nop struct {
	Logger *zap.Logger
}

func (n Nop) TokenUpdated(ctx context.Context, lastUpdated string) {
	if n.Logger != nil {
		n.Logger.Debug("Bot token updated, no notifier configured", zap.String("last_updated", lastUpdated))
	}
}
