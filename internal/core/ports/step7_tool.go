package ports

import "context"

// TranscriptWriter recibe las líneas de log que produce la herramienta
// durante una operación.
type TranscriptWriter interface {
	Add(line string)
	Addf(format string, args ...interface{})
}

// Step7Tool es la herramienta de ingeniería que ejecuta las operaciones.
// Los métodos de enumeración devuelven los elementos en el orden que define
// la herramienta; un error devuelto se convierte en un código de salida
// distinto de cero (un *domain.ExitError conserva su código).
type Step7Tool interface {
	ListProjects(ctx context.Context, log TranscriptWriter) ([]string, error)
	ListPrograms(ctx context.Context, log TranscriptWriter, project string) ([]string, error)
	ListContainers(ctx context.Context, log TranscriptWriter, project string) ([]string, error)
	ListStations(ctx context.Context, log TranscriptWriter, project string) ([]string, error)
	ListModules(ctx context.Context, log TranscriptWriter, project string) ([]string, error)

	CreateProject(ctx context.Context, log TranscriptWriter, projectName, projectDir string) error
	CreateLibrary(ctx context.Context, log TranscriptWriter, projectName, projectDir string) error
	RegisterProject(ctx context.Context, log TranscriptWriter, projectFilePath string) error
	RemoveProject(ctx context.Context, log TranscriptWriter, project string) error
	ImportSourcesDir(ctx context.Context, log TranscriptWriter, project, program, sourcesDir string, overwrite bool) error
	ImportLibSources(ctx context.Context, log TranscriptWriter, project, program, library, libProgram string, overwrite bool) error
	ImportLibBlocks(ctx context.Context, log TranscriptWriter, project, program, library, libProgram string, overwrite bool) error
	ImportSymbols(ctx context.Context, log TranscriptWriter, project, program, symbolFile string, allowConflicts bool) error
	CompileSources(ctx context.Context, log TranscriptWriter, project, program string, sources []string) error
}
