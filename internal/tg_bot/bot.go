package tgbot

import (
	"pauta_voting_system/configs"
	"pauta_voting_system/internal"
	"pauta_voting_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier interface {
	NotifySectionResult(section *models.SectionSummary, report *models.SectionReport) error
}

type telegramNotifier struct {
	sender Sender
	chatID int64
}

type logNotifier struct {
	logger *zap.SugaredLogger
}

// NewNotifier falls back to logging results when the bot is not configured.
func NewNotifier(config configs.Bot, logger *zap.SugaredLogger) (Notifier, error) {
	if !config.IsEnabled() {
		logger.Info("telegram bot is not configured, results will only be logged")
		return &logNotifier{logger: logger}, nil
	}

	logger.Info("creating bot")
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, err
	}
	logger.Info("bot created")

	return NewTelegramNotifier(bot, config.ChatID), nil
}

func NewTelegramNotifier(sender Sender, chatID int64) Notifier {
	return &telegramNotifier{sender: sender, chatID: chatID}
}

func (n *telegramNotifier) NotifySectionResult(section *models.SectionSummary, report *models.SectionReport) error {
	msg := tgbotapi.NewMessage(n.chatID, SectionResultText(section, report))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	_, err := n.sender.Send(msg)
	return err
}

func (n *logNotifier) NotifySectionResult(section *models.SectionSummary, report *models.SectionReport) error {
	n.logger.Infow("section result",
		"sectionID", section.ID,
		"name", section.Name,
		"result", report.Result,
		"totalVotes", report.TotalVotes,
		"votesTrue", report.VotesTrue,
		"votesFalse", report.VotesFalse,
	)
	return nil
}

func SectionResultText(section *models.SectionSummary, report *models.SectionReport) string {
	p := message.NewPrinter(language.BrazilianPortuguese)

	return p.Sprintf(
		"<b>Pauta encerrada: %s</b>\n\nResultado: %s\nVotos: %d (sim: %d, não: %d)\nEncerrada em: %s",
		escapeHTML(section.Name),
		report.Result.CapitalizedLabel(),
		report.TotalVotes,
		report.VotesTrue,
		report.VotesFalse,
		internal.Format(section.ExpiresAt()),
	)
}
