package configs

// Bot configures the Telegram bot that announces section results.
// An empty token disables Telegram delivery and results are only logged.
type Bot struct {
	Token  string `env:"TELEGRAM_RESULT_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_RESULT_CHAT_ID"`
}

func (c Bot) IsEnabled() bool {
	return c.Token != "" && c.ChatID != 0
}
