package main

import (
	"context"
	"errors"
	"os/signal"
	"pauta_voting_system/configs"
	"pauta_voting_system/internal/db"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"
	"pauta_voting_system/internal/di"
	"pauta_voting_system/internal/metrics"
	tgbot "pauta_voting_system/internal/tg_bot"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadSectionResultServiceConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(ctx, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	notifier, err := tgbot.NewNotifier(config.Bot, logger)
	if err != nil {
		logger.Fatalw("failed to create notifier", "error", err)
	}

	logger.Info("initializing repositories")
	sectionRepository := repositories.NewSectionRepository(database)
	sectionReportRepository := repositories.NewSectionReportRepository(database)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err = s.Cron(config.Reporter.Cron).Do(func() {
		reported := reportExpiredSections(ctx, time.Now(), sectionRepository, sectionReportRepository, notifier, logger)
		if reported > 0 {
			logger.Infow("sections reported", "count", reported)
		}
	})
	if err != nil {
		logger.Fatalw("failed to schedule section reports", "error", err, "cron", config.Reporter.Cron)
	}

	s.StartAsync()
	logger.Infow("section result service started", "cron", config.Reporter.Cron)

	<-ctx.Done()
	logger.Info("shutting down")
	s.Stop()
}

// reportExpiredSections records and announces the result of every expired
// section that has no report yet. It returns how many were reported.
func reportExpiredSections(
	ctx context.Context,
	now time.Time,
	sectionRepository repositories.SectionRepository,
	sectionReportRepository repositories.SectionReportRepository,
	notifier tgbot.Notifier,
	logger *zap.SugaredLogger,
) int {
	sections, err := sectionRepository.GetManyExpiredUnreported(ctx, now)
	if err != nil {
		logger.Errorw("failed to get expired sections", "error", err)
		return 0
	}

	if len(sections) == 0 {
		logger.Debug("no sections to report")
		return 0
	}

	reported := 0
	for _, section := range sections {
		report, err := sectionReportRepository.Create(ctx, buildReport(section, now))
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Infow("section already reported", "sectionID", section.ID)
			continue
		}
		if err != nil {
			logger.Errorw("failed to create section report", "sectionID", section.ID, "error", err)
			continue
		}

		metrics.RecordSectionReport(report.Result.String())

		if err := notifier.NotifySectionResult(section, report); err != nil {
			logger.Errorw("failed to send section result", "sectionID", section.ID, "error", err)
		}

		reported++
	}

	return reported
}

func buildReport(section *models.SectionSummary, now time.Time) *models.SectionReport {
	return &models.SectionReport{
		SectionID:  section.ID,
		Result:     models.ResultOf(section.VotesTrue, section.VotesFalse),
		TotalVotes: section.TotalVotes,
		VotesTrue:  section.VotesTrue,
		VotesFalse: section.VotesFalse,
		ReportedAt: now.UTC(),
	}
}
