package jobs

import (
	"context"
	"log/slog"

	"workload/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every five minutes.
const DefaultReconcileSchedule = "0 */5 * * * *"

// ModuleLoadReconciler rebuilds module aggregates from the loads of their orders.
type ModuleLoadReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileModuleLoadsCommand) (commands.ReconcileModuleLoadsResult, error)
}

// ModuleLoadReconcileJob periodically repairs module aggregates that drifted from the sum of
// their orders' loads, for example after rows were edited outside the application.
type ModuleLoadReconcileJob struct {
	handler  ModuleLoadReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewModuleLoadReconcileJob creates the job. An empty schedule falls back to DefaultReconcileSchedule.
// A run that is still busy when the next one is due causes that next run to be skipped.
func NewModuleLoadReconcileJob(handler ModuleLoadReconciler, schedule string, logger *slog.Logger) *ModuleLoadReconcileJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ModuleLoadReconcileJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "module_load_reconcile_job"),
	}
}

func (j *ModuleLoadReconcileJob) Name() string {
	return "module load reconcile job"
}

// Start schedules the job. An invalid cron expression is returned as an error.
func (j *ModuleLoadReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Module load reconcile job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a run in progress to finish.
func (j *ModuleLoadReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Module load reconcile job stopped")
}

func (j *ModuleLoadReconcileJob) run(ctx context.Context) {
	cmd, err := commands.NewReconcileModuleLoadsCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Module load reconcile job failed", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	for _, d := range result.Drifts {
		j.logger.WarnContext(ctx, "Module aggregate drift repaired",
			"module_id", d.ModuleID.String(),
			"module", d.Name,
			"stored", d.Stored.String(),
			"actual", d.Actual.String(),
			"orders_updated", d.OrdersUpdated,
		)
	}
	if err != nil {
		// Modules reconciled before the failure stay committed.
		j.logger.ErrorContext(ctx, "Module load reconcile job failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Module loads reconciled", "checked", result.Checked, "drifted", len(result.Drifts))
}
