package application

import (
	"context"
	"testing"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRotationServiceStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{outcomes: map[domain.Profile]domain.Outcome{
		"A": domain.Recoverable(domain.ReasonQuota, ""),
		"B": domain.Succeeded("/videos/video.mp4"),
		"C": domain.Succeeded("/videos/other.mp4"),
	}}
	svc := NewRotationService(runner, nil)

	summary := svc.Run(context.Background(), []domain.Profile{"A", "B", "C"})

	assert.Equal(t, []domain.Profile{"A", "B"}, runner.calls)
	assert.Equal(t, domain.Profile("B"), summary.Winner)
	assert.True(t, summary.Succeeded())
	require.Len(t, summary.Attempts, 2)
	assert.Equal(t, "/videos/video.mp4", summary.Attempts[1].Outcome.Artifact)
}

func TestRotationServiceTimeoutThenSuccess(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	runner := &fakeRunner{outcomes: map[domain.Profile]domain.Outcome{
		"A": domain.Recoverable(domain.ReasonTimeout, ""),
		"B": domain.Succeeded(""),
	}}
	svc := NewRotationService(runner, logger)

	summary := svc.Run(context.Background(), []domain.Profile{"A", "B"})

	assert.Equal(t, domain.Profile("B"), summary.Winner)

	failed := logs.FilterMessage("Failed with profile").FilterField(zap.String("profile", "A"))
	require.Equal(t, 1, failed.Len())
	assert.Equal(t, "timeout", failed.All()[0].ContextMap()["reason"])
	assert.Equal(t, 1, logs.FilterMessage("Successfully generated video with profile").FilterField(zap.String("profile", "B")).Len())
}

func TestRotationServiceAttemptsEveryProfileWhenAllFail(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	runner := &fakeRunner{outcomes: map[domain.Profile]domain.Outcome{
		"A": domain.Recoverable(domain.ReasonQuota, ""),
		"B": domain.Recoverable(domain.ReasonError, "page crashed"),
		"C": domain.Fatal("could not access interface"),
	}}
	svc := NewRotationService(runner, logger)

	summary := svc.Run(context.Background(), []domain.Profile{"A", "B", "C"})

	assert.Equal(t, []domain.Profile{"A", "B", "C"}, runner.calls)
	assert.False(t, summary.Succeeded())
	assert.False(t, summary.Interrupted)
	assert.Len(t, summary.Attempts, 3)
	assert.Equal(t, 1, logs.FilterMessage("No profile produced a video").Len())
}

func TestRotationServiceFatalIsLoggedAtErrorAndContinues(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	runner := &fakeRunner{outcomes: map[domain.Profile]domain.Outcome{
		"A": domain.Fatal("launch browser: chrome executable not found"),
	}}
	svc := NewRotationService(runner, logger)

	summary := svc.Run(context.Background(), []domain.Profile{"A"})

	assert.False(t, summary.Succeeded())
	entries := logs.FilterLevelExact(zap.ErrorLevel).FilterField(zap.String("profile", "A")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Fatal error with profile", entries[0].Message)
	assert.Contains(t, entries[0].ContextMap()["detail"], "chrome executable not found")
}

func TestRotationServiceEmptyListIsNoop(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	runner := &fakeRunner{}
	svc := NewRotationService(runner, logger)

	summary := svc.Run(context.Background(), nil)

	assert.Empty(t, runner.calls)
	assert.Empty(t, summary.Attempts)
	assert.False(t, summary.Succeeded())
	assert.Zero(t, logs.Len())
}

func TestRotationServiceRunsEachProfileOnce(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{outcomes: map[domain.Profile]domain.Outcome{
		"A": domain.Recoverable(domain.ReasonQuota, ""),
		"B": domain.Recoverable(domain.ReasonTimeout, ""),
	}}
	svc := NewRotationService(runner, nil)

	svc.Run(context.Background(), []domain.Profile{"A", "B"})

	counts := map[domain.Profile]int{}
	for _, call := range runner.calls {
		counts[call]++
	}
	assert.Equal(t, map[domain.Profile]int{"A": 1, "B": 1}, counts)
}

func TestRotationServiceStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	logger, logs := observedLogger()
	runner := &cancellingRunner{cancel: cancel}
	svc := NewRotationService(runner, logger)

	summary := svc.Run(ctx, []domain.Profile{"A", "B", "C"})

	assert.True(t, summary.Interrupted)
	assert.Len(t, summary.Attempts, 1)
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, 1, logs.FilterMessage("Rotation interrupted").Len())
}

type cancellingRunner struct {
	cancel context.CancelFunc
	calls  int
}

func (r *cancellingRunner) RunSession(_ context.Context, _ domain.Profile) domain.Outcome {
	r.calls++
	r.cancel()
	return domain.Recoverable(domain.ReasonError, "context canceled")
}
