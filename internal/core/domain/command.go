package domain

import "fmt"

// Command representa la solicitud de ejecución de una operación con sus
// parámetros. Solo se construye con las funciones de este fichero y no se
// modifica después; los campos que no usa la operación quedan vacíos.
type Command struct {
	Op Operation

	Project         string
	ProjectName     string
	ProjectDir      string
	ProjectFilePath string
	Program         string
	SourcesDir      string
	Library         string
	LibraryProgram  string
	SymbolFile      string
	Sources         []string
	Force           bool
	AllowConflicts  bool
}

func ListProjects() Command { return Command{Op: OpListProjects} }

func ListPrograms(project string) Command {
	return Command{Op: OpListPrograms, Project: project}
}

func ListContainers(project string) Command {
	return Command{Op: OpListContainers, Project: project}
}

func ListStations(project string) Command {
	return Command{Op: OpListStations, Project: project}
}

func ListModules(project string) Command {
	return Command{Op: OpListModules, Project: project}
}

func CreateProject(projectName, projectDir string) Command {
	return Command{Op: OpCreateProject, ProjectName: projectName, ProjectDir: projectDir}
}

func CreateLibrary(projectName, projectDir string) Command {
	return Command{Op: OpCreateLibrary, ProjectName: projectName, ProjectDir: projectDir}
}

func RegisterProject(projectFilePath string) Command {
	return Command{Op: OpRegisterProject, ProjectFilePath: projectFilePath}
}

func RemoveProject(project string) Command {
	return Command{Op: OpRemoveProject, Project: project}
}

func ImportSourcesDir(project, program, sourcesDir string, force bool) Command {
	return Command{Op: OpImportSourcesDir, Project: project, Program: program, SourcesDir: sourcesDir, Force: force}
}

func ImportLibSources(project, library, libraryProgram, program string, force bool) Command {
	return Command{
		Op:             OpImportLibSources,
		Project:        project,
		Library:        library,
		LibraryProgram: libraryProgram,
		Program:        program,
		Force:          force,
	}
}

func ImportLibBlocks(project, library, libraryProgram, program string, force bool) Command {
	return Command{
		Op:             OpImportLibBlocks,
		Project:        project,
		Library:        library,
		LibraryProgram: libraryProgram,
		Program:        program,
		Force:          force,
	}
}

func ImportSymbols(project, symbolFile, program string, allowConflicts bool) Command {
	return Command{
		Op:             OpImportSymbols,
		Project:        project,
		SymbolFile:     symbolFile,
		Program:        program,
		AllowConflicts: allowConflicts,
	}
}

func CompileSources(project, program string, sources []string) Command {
	return Command{
		Op:      OpCompileSources,
		Project: project,
		Program: program,
		Sources: append([]string(nil), sources...),
	}
}

// Param es un parámetro escalar con nombre, en el orden en que la operación lo declara.
type Param struct {
	Name  string
	Value string
}

// Params devuelve los parámetros requeridos por la operación con su valor actual.
func (c Command) Params() []Param {
	switch c.Op {
	case OpListProjects:
		return nil
	case OpListPrograms, OpListContainers, OpListStations, OpListModules, OpRemoveProject:
		return []Param{{"project", c.Project}}
	case OpCreateProject, OpCreateLibrary:
		return []Param{{"projectName", c.ProjectName}, {"projectDir", c.ProjectDir}}
	case OpRegisterProject:
		return []Param{{"projectFilePath", c.ProjectFilePath}}
	case OpImportSourcesDir:
		return []Param{{"project", c.Project}, {"program", c.Program}, {"sourcesDir", c.SourcesDir}}
	case OpImportLibSources, OpImportLibBlocks:
		return []Param{
			{"project", c.Project},
			{"libraryName", c.Library},
			{"libraryProgram", c.LibraryProgram},
			{"program", c.Program},
		}
	case OpImportSymbols:
		return []Param{{"project", c.Project}, {"symbols", c.SymbolFile}, {"program", c.Program}}
	case OpCompileSources:
		return []Param{{"project", c.Project}, {"program", c.Program}}
	}
	return nil
}

// Validate comprueba que la operación es conocida y que ningún parámetro
// requerido está vacío. Solo lo usa el servidor.
func (c Command) Validate() error {
	if !c.Op.Valid() {
		return &ExitError{Code: ExitUsage, Msg: fmt.Sprintf("unknown operation %d", int(c.Op))}
	}
	for _, p := range c.Params() {
		if p.Value == "" {
			return &ExitError{Code: ExitUsage, Msg: fmt.Sprintf("%s: missing required parameter %q", c.Op, p.Name)}
		}
	}
	if c.Op == OpCompileSources && len(c.Sources) == 0 {
		return &ExitError{Code: ExitUsage, Msg: fmt.Sprintf("%s: missing required parameter %q", c.Op, "sources")}
	}
	return nil
}

func (c Command) String() string {
	s := c.Op.String()
	for _, p := range c.Params() {
		s += fmt.Sprintf(" %s=%q", p.Name, p.Value)
	}
	return s
}
