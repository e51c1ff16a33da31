package usecase_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dev.rubentxu.step7-service/internal/adapters/logger"
	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
	"dev.rubentxu.step7-service/internal/core/usecase"
)

// fakeTool sobrescribe solo los métodos que usa cada test; el resto llama a
// la interfaz embebida nil y provoca un panic.
type fakeTool struct {
	ports.Step7Tool

	listPrograms  func(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error)
	createProject func(ctx context.Context, log ports.TranscriptWriter, name, dir string) error
}

func (f *fakeTool) ListPrograms(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return f.listPrograms(ctx, log, project)
}

func (f *fakeTool) CreateProject(ctx context.Context, log ports.TranscriptWriter, name, dir string) error {
	return f.createProject(ctx, log, name, dir)
}

type recordingObserver struct {
	mu      sync.Mutex
	records []domain.CallRecord
}

func (o *recordingObserver) Notify(rec domain.CallRecord) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, rec)
}

func (o *recordingObserver) all() []domain.CallRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.CallRecord(nil), o.records...)
}

func newDispatcher(tool ports.Step7Tool, cfg usecase.DispatcherConfig, observers ...ports.CallObserver) *usecase.Dispatcher {
	return usecase.NewDispatcher(tool, logger.NewNop(), cfg, observers...)
}

func TestDispatcherList(t *testing.T) {
	tool := &fakeTool{
		listPrograms: func(_ context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
			log.Addf("Program S7 Program(1) of %s", project)
			return []string{"S7 Program(1)", "S7 Program(2)"}, nil
		},
	}
	observer := &recordingObserver{}
	d := newDispatcher(tool, usecase.DispatcherConfig{}, observer)

	t.Run("Successful enumeration", func(t *testing.T) {
		ctx := usecase.WithPeer(context.Background(), "10.0.0.7:5555")
		env := d.List(ctx, domain.ListPrograms("ZEn01_10_STEP7__Com_SFB"))

		require.Equal(t, domain.ExitOK, env.Status.ExitCode)
		require.Equal(t, []string{"S7 Program(1)", "S7 Program(2)"}, env.Items)
		require.Equal(t, []string{"Program S7 Program(1) of ZEn01_10_STEP7__Com_SFB"}, env.Status.Log)

		records := observer.all()
		require.Len(t, records, 1)
		require.Equal(t, "ListPrograms", records[0].Operation)
		require.Equal(t, "ZEn01_10_STEP7__Com_SFB", records[0].Params["project"])
		require.Equal(t, 2, records[0].ItemCount)
		require.Equal(t, "10.0.0.7:5555", records[0].Peer)
		require.False(t, records[0].FinishedAt.Before(records[0].StartedAt))
		require.Equal(t, domain.CallCompleted, records[0].State)
	})

	t.Run("Missing parameter is a usage error", func(t *testing.T) {
		env := d.List(context.Background(), domain.ListPrograms(""))

		require.Equal(t, domain.ExitUsage, env.Status.ExitCode)
		require.NotNil(t, env.Items)
		require.Empty(t, env.Items)
		require.Len(t, env.Status.Log, 1)
		require.Contains(t, env.Status.Log[0], `"project"`)

		records := observer.all()
		require.Equal(t, domain.CallFailed, records[len(records)-1].State)
	})

	t.Run("Action passed to List", func(t *testing.T) {
		env := d.List(context.Background(), domain.CreateProject("P", "D"))

		require.Equal(t, domain.ExitUsage, env.Status.ExitCode)
		require.NotNil(t, env.Items)
		require.Empty(t, env.Items)
		require.Equal(t, []string{"CreateProject is not an enumeration operation"}, env.Status.Log)

		records := observer.all()
		last := records[len(records)-1]
		require.Equal(t, "CreateProject", last.Operation)
		require.Equal(t, domain.ExitUsage, last.ExitCode)
		require.Equal(t, domain.CallFailed, last.State)
		require.Equal(t, env.Status.Log, last.Log)
	})

	t.Run("Items dropped on failure", func(t *testing.T) {
		failing := &fakeTool{
			listPrograms: func(_ context.Context, log ports.TranscriptWriter, _ string) ([]string, error) {
				log.Add("partial output")
				return []string{"half"}, domain.Failf("Could not find project X")
			},
		}
		env := newDispatcher(failing, usecase.DispatcherConfig{}).List(context.Background(), domain.ListPrograms("X"))

		require.Equal(t, domain.ExitFailure, env.Status.ExitCode)
		require.Empty(t, env.Items)
		require.Equal(t, []string{"partial output", "Could not find project X"}, env.Status.Log)
	})
}

func TestDispatcherRun(t *testing.T) {
	t.Run("Successful action", func(t *testing.T) {
		tool := &fakeTool{
			createProject: func(_ context.Context, log ports.TranscriptWriter, name, dir string) error {
				log.Addf("Created project %s/%s/%s.s7p", dir, name, name)
				return nil
			},
		}
		env := newDispatcher(tool, usecase.DispatcherConfig{}).Run(context.Background(), domain.CreateProject("NewProj", "C:/Workspace"))

		require.True(t, env.OK())
		require.NoError(t, env.Err())
		require.Equal(t, []string{"Created project C:/Workspace/NewProj/NewProj.s7p"}, env.Log)
	})

	t.Run("Backend exit code is propagated", func(t *testing.T) {
		tool := &fakeTool{
			createProject: func(_ context.Context, _ ports.TranscriptWriter, _, _ string) error {
				return &domain.ExitError{Code: 7, Msg: "tool crashed"}
			},
		}
		env := newDispatcher(tool, usecase.DispatcherConfig{}).Run(context.Background(), domain.CreateProject("P", "D"))

		require.Equal(t, int32(7), env.ExitCode)
		require.Equal(t, []string{"tool crashed"}, env.Log)
	})

	t.Run("Plain errors map to failure", func(t *testing.T) {
		tool := &fakeTool{
			createProject: func(_ context.Context, _ ports.TranscriptWriter, _, _ string) error {
				return errors.New("failed to start S7Cli.exe")
			},
		}
		env := newDispatcher(tool, usecase.DispatcherConfig{}).Run(context.Background(), domain.CreateProject("P", "D"))

		require.Equal(t, domain.ExitFailure, env.ExitCode)
		require.Equal(t, []string{"failed to start S7Cli.exe"}, env.Log)
	})

	t.Run("Enumeration passed to Run", func(t *testing.T) {
		observer := &recordingObserver{}
		env := newDispatcher(&fakeTool{}, usecase.DispatcherConfig{}, observer).Run(context.Background(), domain.ListProjects())

		require.Equal(t, domain.ExitUsage, env.ExitCode)
		require.Equal(t, []string{"ListProjects is not an action operation"}, env.Log)

		records := observer.all()
		require.Len(t, records, 1)
		require.Equal(t, "ListProjects", records[0].Operation)
		require.Equal(t, domain.CallFailed, records[0].State)
	})

	t.Run("Unknown operation", func(t *testing.T) {
		env := newDispatcher(&fakeTool{}, usecase.DispatcherConfig{}).Run(context.Background(), domain.Command{})

		require.Equal(t, domain.ExitUsage, env.ExitCode)
	})

	t.Run("Panic becomes internal error", func(t *testing.T) {
		// RemoveProject no está sobrescrito: la interfaz embebida es nil.
		env := newDispatcher(&fakeTool{}, usecase.DispatcherConfig{}).Run(context.Background(), domain.RemoveProject("P"))

		require.Equal(t, domain.ExitInternal, env.ExitCode)
		require.Len(t, env.Log, 1)
		require.Contains(t, env.Log[0], "internal error")
	})
}

func TestDispatcherTimeouts(t *testing.T) {
	blocking := &fakeTool{
		createProject: func(ctx context.Context, log ports.TranscriptWriter, _, _ string) error {
			log.Add("waiting for SIMATIC Manager")
			<-ctx.Done()
			return ctx.Err()
		},
	}

	t.Run("Default action timeout", func(t *testing.T) {
		d := newDispatcher(blocking, usecase.DispatcherConfig{ActionTimeout: 50 * time.Millisecond})
		env := d.Run(context.Background(), domain.CreateProject("P", "D"))

		require.Equal(t, domain.ExitTimeout, env.ExitCode)
		require.Equal(t, "waiting for SIMATIC Manager", env.Log[0])
		require.Contains(t, env.Log[len(env.Log)-1], "aborted")
	})

	t.Run("Caller cancellation", func(t *testing.T) {
		d := newDispatcher(blocking, usecase.DispatcherConfig{})
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		env := d.Run(ctx, domain.CreateProject("P", "D"))
		require.Equal(t, domain.ExitTimeout, env.ExitCode)
	})

	t.Run("Deadline while waiting for a slot", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		busy := &fakeTool{
			createProject: func(_ context.Context, _ ports.TranscriptWriter, _, _ string) error {
				close(started)
				<-release
				return nil
			},
		}
		d := newDispatcher(busy, usecase.DispatcherConfig{MaxConcurrent: 1})

		done := make(chan domain.StatusEnvelope)
		go func() { done <- d.Run(context.Background(), domain.CreateProject("P", "D")) }()
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		env := d.Run(ctx, domain.CreateProject("Q", "D"))
		require.Equal(t, domain.ExitTimeout, env.ExitCode)
		require.Contains(t, env.Log[0], "waiting for the tool")

		close(release)
		require.True(t, (<-done).OK())
	})
}

func TestDispatcherLimitsConcurrency(t *testing.T) {
	var running, peak int32
	tool := &fakeTool{
		listPrograms: func(_ context.Context, _ ports.TranscriptWriter, _ string) ([]string, error) {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil, nil
		},
	}
	d := newDispatcher(tool, usecase.DispatcherConfig{MaxConcurrent: 2})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env := d.List(context.Background(), domain.ListPrograms("P"))
			assert.True(t, env.OK())
			assert.NotNil(t, env.Items)
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}
