package tool

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

const (
	maxLineSize = 4 * 1024 * 1024

	// Plazo para cerrar stdout/stderr una vez muerto el proceso, aunque
	// algún hijo suyo los mantenga abiertos.
	defaultWaitDelay = 5 * time.Second
)

// ExecConfig describe cómo invocar el front-end de línea de comandos.
type ExecConfig struct {
	// Ejecutable, p.ej. "S7Cli.exe".
	Command string
	// Argumentos que preceden siempre al verbo.
	Args    []string
	WorkDir string
	// Variables KEY=VALUE añadidas al entorno del proceso.
	Env []string
	// WaitDelay acota la espera de la salida tras terminar el proceso.
	WaitDelay time.Duration
}

// ExecTool ejecuta cada operación como un proceso del front-end de línea de
// comandos. Todas las líneas de stdout y stderr van al log de la llamada en
// orden de llegada. Los verbos de enumeración reciben --json y la última
// línea no vacía de stdout debe ser un array JSON de strings.
type ExecTool struct {
	cfg    ExecConfig
	logger ports.Logger
}

var _ ports.Step7Tool = (*ExecTool)(nil)

func NewExecTool(cfg ExecConfig, logger ports.Logger) (*ExecTool, error) {
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, errors.New("exec tool: command is required")
	}
	if cfg.WaitDelay <= 0 {
		cfg.WaitDelay = defaultWaitDelay
	}
	return &ExecTool{cfg: cfg, logger: logger.With("component", "exec_tool")}, nil
}

func (t *ExecTool) ListProjects(ctx context.Context, log ports.TranscriptWriter) ([]string, error) {
	return t.list(ctx, log, domain.OpListProjects)
}

func (t *ExecTool) ListPrograms(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return t.list(ctx, log, domain.OpListPrograms, "--project", project)
}

func (t *ExecTool) ListContainers(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return t.list(ctx, log, domain.OpListContainers, "--project", project)
}

func (t *ExecTool) ListStations(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return t.list(ctx, log, domain.OpListStations, "--project", project)
}

func (t *ExecTool) ListModules(ctx context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return t.list(ctx, log, domain.OpListModules, "--project", project)
}

func (t *ExecTool) CreateProject(ctx context.Context, log ports.TranscriptWriter, projectName, projectDir string) error {
	return t.act(ctx, log, domain.OpCreateProject, "--projectName", projectName, "--projectDir", projectDir)
}

func (t *ExecTool) CreateLibrary(ctx context.Context, log ports.TranscriptWriter, projectName, projectDir string) error {
	return t.act(ctx, log, domain.OpCreateLibrary, "--projectName", projectName, "--projectDir", projectDir)
}

func (t *ExecTool) RegisterProject(ctx context.Context, log ports.TranscriptWriter, projectFilePath string) error {
	return t.act(ctx, log, domain.OpRegisterProject, "--projectFilePath", projectFilePath)
}

func (t *ExecTool) RemoveProject(ctx context.Context, log ports.TranscriptWriter, project string) error {
	// --force evita la confirmación interactiva.
	return t.act(ctx, log, domain.OpRemoveProject, "--project", project, "--force")
}

func (t *ExecTool) ImportSourcesDir(ctx context.Context, log ports.TranscriptWriter, project, program, sourcesDir string, overwrite bool) error {
	flags := []string{"--project", project, "--program", program, "--sourcesDir", sourcesDir}
	return t.act(ctx, log, domain.OpImportSourcesDir, withSwitch(flags, "--overwrite", overwrite)...)
}

func (t *ExecTool) ImportLibSources(ctx context.Context, log ports.TranscriptWriter, project, program, library, libProgram string, overwrite bool) error {
	flags := []string{"--project", project, "--program", program, "--library", library, "--libProgram", libProgram}
	return t.act(ctx, log, domain.OpImportLibSources, withSwitch(flags, "--overwrite", overwrite)...)
}

func (t *ExecTool) ImportLibBlocks(ctx context.Context, log ports.TranscriptWriter, project, program, library, libProgram string, overwrite bool) error {
	flags := []string{"--project", project, "--program", program, "--library", library, "--libProgram", libProgram}
	return t.act(ctx, log, domain.OpImportLibBlocks, withSwitch(flags, "--overwrite", overwrite)...)
}

func (t *ExecTool) ImportSymbols(ctx context.Context, log ports.TranscriptWriter, project, program, symbolFile string, allowConflicts bool) error {
	flags := []string{"--project", project, "--program", program, "--symbolFile", symbolFile}
	return t.act(ctx, log, domain.OpImportSymbols, withSwitch(flags, "--allowConflicts", allowConflicts)...)
}

func (t *ExecTool) CompileSources(ctx context.Context, log ports.TranscriptWriter, project, program string, sources []string) error {
	return t.act(ctx, log, domain.OpCompileSources, "--project", project, "--program", program, "--sources", strings.Join(sources, ","))
}

func withSwitch(flags []string, name string, on bool) []string {
	if on {
		return append(flags, name)
	}
	return flags
}

func (t *ExecTool) act(ctx context.Context, log ports.TranscriptWriter, op domain.Operation, flags ...string) error {
	_, err := t.run(ctx, log, op, flags, false)
	return err
}

func (t *ExecTool) list(ctx context.Context, log ports.TranscriptWriter, op domain.Operation, flags ...string) ([]string, error) {
	return t.run(ctx, log, op, flags, true)
}

func (t *ExecTool) run(ctx context.Context, log ports.TranscriptWriter, op domain.Operation, flags []string, listing bool) ([]string, error) {
	args := append([]string{}, t.cfg.Args...)
	args = append(args, op.Verb())
	args = append(args, flags...)
	if listing {
		args = append(args, "--json")
	}

	cmd := exec.CommandContext(ctx, t.cfg.Command, args...)
	cmd.Dir = t.cfg.WorkDir
	if len(t.cfg.Env) > 0 {
		cmd.Env = append(os.Environ(), t.cfg.Env...)
	}
	cmd.WaitDelay = t.cfg.WaitDelay

	// Cmd copia la salida a estas tuberías; Wait deja de copiar cuando vence
	// WaitDelay, aunque un hijo del proceso siga escribiendo.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	name := filepath.Base(t.cfg.Command)
	t.logger.Debug("starting tool process", "command", t.cfg.Command, "args", args)
	if err := cmd.Start(); err != nil {
		_ = stdoutW.Close()
		_ = stderrW.Close()
		return nil, errors.Wrapf(err, "failed to start %s", name)
	}

	out := &outputCollector{log: log}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		t.scan(stdoutR, out.stdout, "stdout")
	}()
	go func() {
		defer wg.Done()
		t.scan(stderrR, log.Add, "stderr")
	}()
	err := cmd.Wait()
	_ = stdoutW.Close()
	_ = stderrW.Close()
	wg.Wait()

	if errors.Is(err, exec.ErrWaitDelay) {
		t.logger.Warn("tool output still open after exit", "command", name, "verb", op.Verb())
		err = nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := int32(exitErr.ExitCode())
			if code <= 0 {
				code = domain.ExitFailure
			}
			return nil, &domain.ExitError{
				Code: code,
				Msg:  fmt.Sprintf("%s %s exited with code %d", name, op.Verb(), exitErr.ExitCode()),
			}
		}
		return nil, errors.Wrapf(err, "%s %s failed", name, op.Verb())
	}

	if !listing {
		return nil, nil
	}
	return out.items(name, op)
}

func (t *ExecTool) scan(r io.Reader, emit func(string), stream string) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.logger.Warn("error reading tool output", "stream", stream, "error", err)
		_, _ = io.Copy(io.Discard, r)
	}
}

// outputCollector reenvía cada línea de stdout al log según llega y recuerda
// la última no vacía, que en las enumeraciones es el listado JSON.
type outputCollector struct {
	log  ports.TranscriptWriter
	mu   sync.Mutex
	last string
}

func (c *outputCollector) stdout(s string) {
	c.log.Add(s)
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		c.mu.Lock()
		c.last = trimmed
		c.mu.Unlock()
	}
}

func (c *outputCollector) items(name string, op domain.Operation) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !strings.HasPrefix(c.last, "[") {
		return nil, domain.Failf("%s %s produced no listing", name, op.Verb())
	}
	var items []string
	if err := json.Unmarshal([]byte(c.last), &items); err != nil {
		return nil, domain.Failf("%s %s produced a malformed listing: %v", name, op.Verb(), err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}
