package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconciler struct {
	result commands.ReconcileModuleLoadsResult
	err    error
	calls  int
}

func (f *fakeReconciler) Handle(
	_ context.Context,
	cmd commands.ReconcileModuleLoadsCommand,
) (commands.ReconcileModuleLoadsResult, error) {
	f.calls++
	if err := cmd.Validate(); err != nil {
		return commands.ReconcileModuleLoadsResult{}, err
	}
	return f.result, f.err
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestModuleLoadReconcileJob_LogsDrift(t *testing.T) {
	logger, buf := bufferLogger()
	reconciler := &fakeReconciler{result: commands.ReconcileModuleLoadsResult{
		Checked: 2,
		Drifts: []commands.ModuleLoadDrift{{
			ModuleID: kernel.NewUUID(),
			Name:     "Linea A",
			Stored:   kernel.MustLoadDays("2.00"),
			Actual:   kernel.MustLoadDays("1.50"),
		}},
	}}
	job := NewModuleLoadReconcileJob(reconciler, "", logger)

	job.run(context.Background())

	assert.Equal(t, 1, reconciler.calls)
	out := buf.String()
	assert.Contains(t, out, "Module aggregate drift repaired")
	assert.Contains(t, out, "stored=2.00")
	assert.Contains(t, out, "actual=1.50")
	assert.Contains(t, out, "checked=2")
}

func TestModuleLoadReconcileJob_LogsFailure(t *testing.T) {
	logger, buf := bufferLogger()
	job := NewModuleLoadReconcileJob(&fakeReconciler{err: errors.New("db down")}, "", logger)

	job.run(context.Background())

	assert.Contains(t, buf.String(), "Module load reconcile job failed")
	assert.Contains(t, buf.String(), "db down")
}

func TestModuleLoadReconcileJob_DefaultSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	job := NewModuleLoadReconcileJob(&fakeReconciler{}, "", logger)

	assert.Equal(t, DefaultReconcileSchedule, job.schedule)
}

func TestModuleLoadReconcileJob_InvalidSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	job := NewModuleLoadReconcileJob(&fakeReconciler{}, "every five minutes", logger)

	require.Error(t, job.Start())
}

func TestModuleLoadReconcileJob_StartStop(t *testing.T) {
	logger, buf := bufferLogger()
	job := NewModuleLoadReconcileJob(&fakeReconciler{}, "0 0 3 * * *", logger)

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Module load reconcile job started")
	assert.Contains(t, buf.String(), "Module load reconcile job stopped")
}
