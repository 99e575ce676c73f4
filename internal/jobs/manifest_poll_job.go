package jobs

import (
	"context"
	"log/slog"

	"pipeyard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// manifestPollSchedule runs the sweep every five minutes. Extraction
// is slow and costs money per call, so there is no point polling faster.
const manifestPollSchedule = "0 */5 * * * *"

// ManifestPollJob periodically sweeps unparsed manifests through the
// extraction service. Documents whose extraction fails stay unparsed
// and are picked up again on the next run.
type ManifestPollJob struct {
	handler commands.ProcessManifestsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewManifestPollJob creates a new job for processing uploaded manifests.
func NewManifestPollJob(handler commands.ProcessManifestsCommandHandler, logger *slog.Logger) *ManifestPollJob {
	return &ManifestPollJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "manifest_poll_job"),
	}
}

// Start begins the manifest poll job.
func (j *ManifestPollJob) Start() error {
	_, err := j.cron.AddFunc(manifestPollSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewProcessManifestsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Manifest poll job could not build command", "error", cmdErr)
			return
		}

		parsed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Manifest poll job failed", "error", handleErr)
			return
		}

		if parsed > 0 {
			j.logger.InfoContext(ctx, "Manifest poll job parsed documents", "count", parsed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Manifest poll job started (running every five minutes)")
	return nil
}

// Stop stops the manifest poll job.
func (j *ManifestPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Manifest poll job stopped")
}
