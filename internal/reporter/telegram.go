package reporter

import (
	"fmt"
	"html"
	"strings"

	"go-job-compiler/internal/config"
	"go-job-compiler/internal/group"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RunSummary is what a compilation reports once it is done.
type RunSummary struct {
	FilesProcessed int
	FilesSkipped   int
	TotalExtracted int
	NewSinceLast   int
	HistoryEnabled bool
	Summary        group.Summary
	ReportPath     string
}

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(s RunSummary) error {
	return t.SendMessage(FormatSummary(s))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Job compiler error</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}

// FormatSummary renders a run summary as Telegram HTML.
func FormatSummary(s RunSummary) string {
	var b strings.Builder
	b.WriteString("📊 <b>Job compilation complete</b>\n")
	fmt.Fprintf(&b, "📁 Files processed: %d", s.FilesProcessed)
	if s.FilesSkipped > 0 {
		fmt.Fprintf(&b, " (%d skipped)", s.FilesSkipped)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "🔍 Total jobs found: %d\n", s.TotalExtracted)
	fmt.Fprintf(&b, "🗑️ Duplicates removed: %d\n", s.Summary.DuplicatesRemoved)
	fmt.Fprintf(&b, "✨ Unique jobs: %d\n", s.Summary.Unique)
	if s.HistoryEnabled {
		fmt.Fprintf(&b, "🆕 New since last run: %d\n", s.NewSinceLast)
	}
	for _, pc := range s.Summary.PerPlatform {
		fmt.Fprintf(&b, "  • %s: %d\n", html.EscapeString(pc.Platform), pc.Jobs)
	}
	if s.ReportPath != "" {
		fmt.Fprintf(&b, "📄 <code>%s</code>", html.EscapeString(s.ReportPath))
	}
	return strings.TrimRight(b.String(), "\n")
}
