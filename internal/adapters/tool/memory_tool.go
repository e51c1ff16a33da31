package tool

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

const maxProjectNameLength = 8

var (
	sourceExtensions = map[string]bool{".scl": true, ".awl": true, ".gr7": true, ".inp": true}
	symbolExtensions = map[string]bool{".asc": true, ".dif": true, ".sdf": true, ".seq": true}
)

// MemoryProgram es un programa S7 dentro de un proyecto simulado.
type MemoryProgram struct {
	Name string
	// LogPath es la ruta lógica station\module\program, opcional.
	LogPath    string
	Containers []string
	Sources    []string
	Blocks     []string
	SymbolFile string
}

// MemoryProject es un proyecto o librería registrado en la herramienta simulada.
type MemoryProject struct {
	Name     string
	Dir      string
	Library  bool
	Programs []MemoryProgram
	Stations []string
	Modules  []string
}

// FilePath devuelve la ruta al fichero .s7p (o .s7l) del proyecto.
func (p *MemoryProject) FilePath() string {
	ext := ".s7p"
	if p.Library {
		ext = ".s7l"
	}
	dir := strings.TrimRight(filepath.ToSlash(p.Dir), "/")
	return dir + "/" + p.Name + "/" + p.Name + ext
}

// MemoryTool simula la herramienta de ingeniería en memoria. Los proyectos se
// enumeran en orden de registro.
type MemoryTool struct {
	mu       sync.Mutex
	projects []*MemoryProject
	logger   ports.Logger
}

var _ ports.Step7Tool = (*MemoryTool)(nil)

func NewMemoryTool(logger ports.Logger, projects ...MemoryProject) *MemoryTool {
	m := &MemoryTool{logger: logger.With("component", "memory_tool")}
	for _, p := range projects {
		m.AddProject(p)
	}
	return m
}

// AddProject registra un proyecto sin validarlo.
func (m *MemoryTool) AddProject(p MemoryProject) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := p
	cp.Programs = append([]MemoryProgram(nil), p.Programs...)
	m.projects = append(m.projects, &cp)
}

// findProject resuelve un proyecto por nombre o por ruta a su fichero.
// Debe llamarse con m.mu tomado.
func (m *MemoryTool) findProject(project string) (*MemoryProject, int, error) {
	wanted := filepath.ToSlash(project)
	for i, p := range m.projects {
		if p.Name == project || p.FilePath() == wanted {
			return p, i, nil
		}
	}
	return nil, -1, domain.Failf("Could not find project %s", project)
}

func (m *MemoryTool) findProgram(project, program string) (*MemoryProgram, error) {
	p, _, err := m.findProject(project)
	if err != nil {
		return nil, err
	}
	for i := range p.Programs {
		prog := &p.Programs[i]
		if prog.Name == program || (prog.LogPath != "" && prog.LogPath == program) {
			return prog, nil
		}
	}
	return nil, domain.Failf("Could not find program %s in project %s", program, project)
}

func (m *MemoryTool) ListProjects(_ context.Context, log ports.TranscriptWriter) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]string, 0, len(m.projects))
	for _, p := range m.projects {
		log.Addf("Project %s Path %s", p.Name, p.FilePath())
		items = append(items, p.Name)
	}
	return items, nil
}

func (m *MemoryTool) ListPrograms(_ context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, _, err := m.findProject(project)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(p.Programs))
	for _, prog := range p.Programs {
		log.Addf("Program %s", prog.Name)
		items = append(items, prog.Name)
	}
	return items, nil
}

func (m *MemoryTool) ListContainers(_ context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, _, err := m.findProject(project)
	if err != nil {
		return nil, err
	}
	items := []string{}
	for _, prog := range p.Programs {
		for _, c := range prog.Containers {
			log.Addf("Container %s (%s)", c, prog.Name)
			items = append(items, c)
		}
	}
	return items, nil
}

func (m *MemoryTool) ListStations(_ context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return m.listNames(log, project, "Station", func(p *MemoryProject) []string { return p.Stations })
}

func (m *MemoryTool) ListModules(_ context.Context, log ports.TranscriptWriter, project string) ([]string, error) {
	return m.listNames(log, project, "Module", func(p *MemoryProject) []string { return p.Modules })
}

func (m *MemoryTool) listNames(log ports.TranscriptWriter, project, label string, names func(*MemoryProject) []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, _, err := m.findProject(project)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(names(p)))
	for _, n := range names(p) {
		log.Addf("%s %s", label, n)
		items = append(items, n)
	}
	return items, nil
}

func (m *MemoryTool) CreateProject(_ context.Context, log ports.TranscriptWriter, projectName, projectDir string) error {
	return m.create(log, projectName, projectDir, false)
}

func (m *MemoryTool) CreateLibrary(_ context.Context, log ports.TranscriptWriter, projectName, projectDir string) error {
	return m.create(log, projectName, projectDir, true)
}

func (m *MemoryTool) create(log ports.TranscriptWriter, name, dir string, library bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(name) > maxProjectNameLength {
		return domain.Failf("Could not create project %s in %s: Name can have at most %d characters",
			name, dir, maxProjectNameLength)
	}
	if _, _, err := m.findProject(name); err == nil {
		return domain.Failf("Could not create project %s in %s: Project exists", name, dir)
	}
	p := &MemoryProject{Name: name, Dir: dir, Library: library}
	m.projects = append(m.projects, p)
	m.logger.Debug("project created", "name", name, "library", library)
	log.Addf("Created %s %s", kindLabel(library), p.FilePath())
	return nil
}

func kindLabel(library bool) string {
	if library {
		return "library"
	}
	return "project"
}

func (m *MemoryTool) RegisterProject(_ context.Context, log ports.TranscriptWriter, projectFilePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path := filepath.ToSlash(projectFilePath)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".s7p" && ext != ".s7l" {
		return domain.Failf("Could not register %s: expected a .s7p or .s7l file", projectFilePath)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := filepath.ToSlash(filepath.Dir(filepath.Dir(path)))
	if _, _, err := m.findProject(name); err == nil {
		return domain.Failf("Could not register %s: project %s is already registered", projectFilePath, name)
	}
	m.projects = append(m.projects, &MemoryProject{Name: name, Dir: dir, Library: ext == ".s7l"})
	log.Addf("Registered project %s", path)
	return nil
}

func (m *MemoryTool) RemoveProject(_ context.Context, log ports.TranscriptWriter, project string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, i, err := m.findProject(project)
	if err != nil {
		return err
	}
	m.projects = append(m.projects[:i], m.projects[i+1:]...)
	log.Addf("Removed project %s", p.Name)
	return nil
}

func (m *MemoryTool) ImportSourcesDir(_ context.Context, log ports.TranscriptWriter, project, program, sourcesDir string, overwrite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prog, err := m.findProgram(project, program)
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(sourcesDir)
	if err != nil {
		return domain.Failf("Could not read sources directory %s: %v", sourcesDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !sourceExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	merged, err := mergeNames(prog.Sources, names, overwrite, "Source")
	if err != nil {
		return err
	}
	prog.Sources = merged
	for _, n := range names {
		log.Addf("Imported source %s into %s", n, prog.Name)
	}
	return nil
}

func (m *MemoryTool) ImportLibSources(_ context.Context, log ports.TranscriptWriter, project, program, library, libProgram string, overwrite bool) error {
	return m.importFromLibrary(log, project, program, library, libProgram, overwrite, "Source",
		func(p *MemoryProgram) *[]string { return &p.Sources })
}

func (m *MemoryTool) ImportLibBlocks(_ context.Context, log ports.TranscriptWriter, project, program, library, libProgram string, overwrite bool) error {
	return m.importFromLibrary(log, project, program, library, libProgram, overwrite, "Block",
		func(p *MemoryProgram) *[]string { return &p.Blocks })
}

func (m *MemoryTool) importFromLibrary(log ports.TranscriptWriter, project, program, library, libProgram string,
	overwrite bool, label string, field func(*MemoryProgram) *[]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, err := m.findProgram(library, libProgram)
	if err != nil {
		return err
	}
	dst, err := m.findProgram(project, program)
	if err != nil {
		return err
	}
	names := append([]string(nil), *field(src)...)
	merged, err := mergeNames(*field(dst), names, overwrite, label)
	if err != nil {
		return err
	}
	*field(dst) = merged
	for _, n := range names {
		log.Addf("Imported %s %s from %s:%s", strings.ToLower(label), n, library, libProgram)
	}
	return nil
}

// mergeNames añade names a existing conservando el orden. Sin overwrite, un
// nombre repetido es un error.
func mergeNames(existing, names []string, overwrite bool, label string) ([]string, error) {
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[n] = true
	}
	out := append([]string(nil), existing...)
	for _, n := range names {
		if seen[n] {
			if !overwrite {
				return nil, domain.Failf("%s %s already exists and overwrite is disabled", label, n)
			}
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

func (m *MemoryTool) ImportSymbols(_ context.Context, log ports.TranscriptWriter, project, program, symbolFile string, allowConflicts bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prog, err := m.findProgram(project, program)
	if err != nil {
		return err
	}
	if !symbolExtensions[strings.ToLower(filepath.Ext(symbolFile))] {
		return domain.Failf("Could not import symbols from %s: unsupported format", symbolFile)
	}
	if _, err := os.Stat(symbolFile); err != nil {
		return domain.Failf("Could not import symbols from %s: %v", symbolFile, err)
	}
	if prog.SymbolFile != "" && !allowConflicts {
		return domain.Failf("Could not import symbols from %s: program %s already has a symbol table", symbolFile, prog.Name)
	}
	prog.SymbolFile = symbolFile
	log.Addf("Imported symbols from %s into %s", symbolFile, prog.Name)
	return nil
}

func (m *MemoryTool) CompileSources(_ context.Context, log ports.TranscriptWriter, project, program string, sources []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prog, err := m.findProgram(project, program)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(prog.Sources))
	for _, s := range prog.Sources {
		known[s] = true
	}
	for _, s := range sources {
		if !known[s] {
			return domain.Failf("Could not compile source %s: not found in %s", s, prog.Name)
		}
		log.Addf("Compiled source %s", s)
		blocks, _ := mergeNames(prog.Blocks, []string{s}, true, "Block")
		prog.Blocks = blocks
	}
	return nil
}
