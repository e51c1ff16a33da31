package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

const (
	DefaultListTimeout   = 2 * time.Minute
	DefaultActionTimeout = 30 * time.Minute
)

// DispatcherConfig controla los límites de ejecución de cada llamada.
type DispatcherConfig struct {
	// Plazo aplicado cuando el contexto entrante no trae uno.
	ListTimeout   time.Duration
	ActionTimeout time.Duration
	// Número máximo de operaciones simultáneas contra la herramienta.
	MaxConcurrent int
}

// Dispatcher ejecuta comandos contra la herramienta y produce exactamente un
// sobre por llamada.
type Dispatcher struct {
	tool      ports.Step7Tool
	logger    ports.Logger
	cfg       DispatcherConfig
	slots     chan struct{}
	observers []ports.CallObserver
}

func NewDispatcher(tool ports.Step7Tool, logger ports.Logger, cfg DispatcherConfig, observers ...ports.CallObserver) *Dispatcher {
	if cfg.ListTimeout <= 0 {
		cfg.ListTimeout = DefaultListTimeout
	}
	if cfg.ActionTimeout <= 0 {
		cfg.ActionTimeout = DefaultActionTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Dispatcher{
		tool:      tool,
		logger:    logger.With("component", "dispatcher"),
		cfg:       cfg,
		slots:     make(chan struct{}, cfg.MaxConcurrent),
		observers: observers,
	}
}

// Run ejecuta una acción y devuelve su StatusEnvelope.
func (d *Dispatcher) Run(ctx context.Context, cmd domain.Command) domain.StatusEnvelope {
	status, _ := d.dispatch(ctx, cmd, domain.KindAction)
	return status
}

// List ejecuta una enumeración y devuelve su ListEnvelope. Status siempre
// está relleno; Items está vacío si el código de salida no es cero.
func (d *Dispatcher) List(ctx context.Context, cmd domain.Command) domain.ListEnvelope {
	status, items := d.dispatch(ctx, cmd, domain.KindEnumeration)
	return domain.ListEnvelope{Status: status, Items: items}
}

// dispatch ejecuta cmd, que debe ser de la clase want, y registra la llamada
// en los observadores sea cual sea el resultado.
func (d *Dispatcher) dispatch(ctx context.Context, cmd domain.Command, want domain.Kind) (domain.StatusEnvelope, []string) {
	record := domain.NewCallRecord(cmd, time.Now())
	record.Peer = PeerFromContext(ctx)
	logger := d.logger.With("call_id", record.ID.String(), "operation", cmd.Op.String())
	logger.Debug("dispatching command", "command", cmd.String())

	transcript := domain.NewTranscript()
	items, err := d.execute(ctx, cmd, want, transcript, &record)

	status := domain.StatusEnvelope{ExitCode: domain.ExitOK}
	if err != nil {
		status.ExitCode = exitCodeFor(err)
		transcript.Add(finalLine(err))
		items = nil
	}
	status.Log = transcript.Lines()
	if items == nil {
		items = []string{}
	}

	record.ExitCode = status.ExitCode
	if terr := record.Transition(domain.FinalState(status.ExitCode)); terr != nil {
		logger.Warn("unexpected call state", "error", terr)
	}
	record.Log = status.Log
	record.ItemCount = len(items)
	record.FinishedAt = time.Now()

	if status.OK() {
		logger.Info("command completed", "items", len(items), "duration", record.Duration().String())
	} else {
		logger.Warn("command failed", "exit_code", status.ExitCode, "error", err, "duration", record.Duration().String())
	}

	for _, o := range d.observers {
		o.Notify(record)
	}
	return status, items
}

func (d *Dispatcher) execute(ctx context.Context, cmd domain.Command, want domain.Kind, t *domain.Transcript, record *domain.CallRecord) (items []string, err error) {
	if cmd.Op.Valid() && cmd.Op.Kind() != want {
		return nil, &domain.ExitError{Code: domain.ExitUsage, Msg: fmt.Sprintf("%s is not an %s operation", cmd.Op, want)}
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	_ = record.Transition(domain.CallQueued)

	if _, ok := ctx.Deadline(); !ok {
		timeout := d.cfg.ActionTimeout
		if cmd.Op.Kind() == domain.KindEnumeration {
			timeout = d.cfg.ListTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	select {
	case d.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, &domain.ExitError{
			Code: domain.ExitTimeout,
			Msg:  fmt.Sprintf("%s aborted while waiting for the tool: %v", cmd.Op, ctx.Err()),
		}
	}
	defer func() { <-d.slots }()
	_ = record.Transition(domain.CallRunning)

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while running command", "operation", cmd.Op.String(), "panic", r)
			items = nil
			err = &domain.ExitError{Code: domain.ExitInternal, Msg: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	items, err = d.invoke(ctx, cmd, t)
	if err != nil && ctx.Err() != nil {
		err = &domain.ExitError{Code: domain.ExitTimeout, Msg: fmt.Sprintf("%s aborted: %v", cmd.Op, ctx.Err())}
	}
	return items, err
}

// invoke traduce el comando a la llamada correspondiente de la herramienta.
func (d *Dispatcher) invoke(ctx context.Context, cmd domain.Command, t *domain.Transcript) ([]string, error) {
	tool := d.tool
	switch cmd.Op {
	case domain.OpListProjects:
		return tool.ListProjects(ctx, t)
	case domain.OpListPrograms:
		return tool.ListPrograms(ctx, t, cmd.Project)
	case domain.OpListContainers:
		return tool.ListContainers(ctx, t, cmd.Project)
	case domain.OpListStations:
		return tool.ListStations(ctx, t, cmd.Project)
	case domain.OpListModules:
		return tool.ListModules(ctx, t, cmd.Project)
	case domain.OpCreateProject:
		return nil, tool.CreateProject(ctx, t, cmd.ProjectName, cmd.ProjectDir)
	case domain.OpCreateLibrary:
		return nil, tool.CreateLibrary(ctx, t, cmd.ProjectName, cmd.ProjectDir)
	case domain.OpRegisterProject:
		return nil, tool.RegisterProject(ctx, t, cmd.ProjectFilePath)
	case domain.OpRemoveProject:
		return nil, tool.RemoveProject(ctx, t, cmd.Project)
	case domain.OpImportSourcesDir:
		return nil, tool.ImportSourcesDir(ctx, t, cmd.Project, cmd.Program, cmd.SourcesDir, cmd.Force)
	case domain.OpImportLibSources:
		return nil, tool.ImportLibSources(ctx, t, cmd.Project, cmd.Program, cmd.Library, cmd.LibraryProgram, cmd.Force)
	case domain.OpImportLibBlocks:
		return nil, tool.ImportLibBlocks(ctx, t, cmd.Project, cmd.Program, cmd.Library, cmd.LibraryProgram, cmd.Force)
	case domain.OpImportSymbols:
		return nil, tool.ImportSymbols(ctx, t, cmd.Project, cmd.Program, cmd.SymbolFile, cmd.AllowConflicts)
	case domain.OpCompileSources:
		return nil, tool.CompileSources(ctx, t, cmd.Project, cmd.Program, cmd.Sources)
	default:
		return nil, &domain.ExitError{Code: domain.ExitUsage, Msg: fmt.Sprintf("unsupported operation %s", cmd.Op)}
	}
}

func exitCodeFor(err error) int32 {
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) && exitErr.Code != domain.ExitOK {
		return exitErr.Code
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ExitTimeout
	}
	return domain.ExitFailure
}

func finalLine(err error) string {
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Msg
	}
	return err.Error()
}
