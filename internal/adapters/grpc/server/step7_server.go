package server

import (
	"context"

	"dev.rubentxu.step7-service/internal/adapters/grpc/protos/step7"
	"dev.rubentxu.step7-service/internal/core/domain"
)

// Executor ejecuta comandos y devuelve siempre un sobre. Lo implementa
// usecase.Dispatcher.
type Executor interface {
	Run(ctx context.Context, cmd domain.Command) domain.StatusEnvelope
	List(ctx context.Context, cmd domain.Command) domain.ListEnvelope
}

type step7Server struct {
	step7.UnimplementedStep7Server
	executor Executor
}

// NewStep7Server traduce cada RPC a un domain.Command. Los fallos de la
// herramienta viajan en el sobre; el error gRPC queda para el transporte.
func NewStep7Server(executor Executor) step7.Step7Server {
	return &step7Server{executor: executor}
}

func (s *step7Server) ListProjects(ctx context.Context, _ *step7.ListProjectsRequest) (*step7.ListReply, error) {
	return s.list(ctx, domain.ListProjects())
}

func (s *step7Server) ListPrograms(ctx context.Context, req *step7.ListProgramsRequest) (*step7.ListReply, error) {
	return s.list(ctx, domain.ListPrograms(req.Project))
}

func (s *step7Server) ListContainers(ctx context.Context, req *step7.ListContainersRequest) (*step7.ListReply, error) {
	return s.list(ctx, domain.ListContainers(req.Project))
}

func (s *step7Server) ListStations(ctx context.Context, req *step7.ListStationsRequest) (*step7.ListReply, error) {
	return s.list(ctx, domain.ListStations(req.Project))
}

func (s *step7Server) ListModules(ctx context.Context, req *step7.ListModulesRequest) (*step7.ListReply, error) {
	return s.list(ctx, domain.ListModules(req.Project))
}

func (s *step7Server) CreateProject(ctx context.Context, req *step7.CreateProjectRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.CreateProject(req.ProjectName, req.ProjectDir))
}

func (s *step7Server) CreateLibrary(ctx context.Context, req *step7.CreateLibraryRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.CreateLibrary(req.ProjectName, req.ProjectDir))
}

func (s *step7Server) RegisterProject(ctx context.Context, req *step7.RegisterProjectRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.RegisterProject(req.ProjectFilePath))
}

func (s *step7Server) RemoveProject(ctx context.Context, req *step7.RemoveProjectRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.RemoveProject(req.Project))
}

func (s *step7Server) ImportSourcesDir(ctx context.Context, req *step7.ImportSourcesDirRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.ImportSourcesDir(req.Project, req.Program, req.SourcesDir, req.Force))
}

func (s *step7Server) ImportLibSources(ctx context.Context, req *step7.ImportLibRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.ImportLibSources(req.Project, req.LibraryName, req.LibraryProgram, req.Program, req.Force))
}

func (s *step7Server) ImportLibBlocks(ctx context.Context, req *step7.ImportLibRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.ImportLibBlocks(req.Project, req.LibraryName, req.LibraryProgram, req.Program, req.Force))
}

func (s *step7Server) ImportSymbols(ctx context.Context, req *step7.ImportSymbolsRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.ImportSymbols(req.Project, req.Symbols, req.Program, req.AllowConflicts))
}

func (s *step7Server) CompileSources(ctx context.Context, req *step7.CompileSourcesRequest) (*step7.StatusReply, error) {
	return s.run(ctx, domain.CompileSources(req.Project, req.Program, req.Sources))
}

func (s *step7Server) run(ctx context.Context, cmd domain.Command) (*step7.StatusReply, error) {
	return StatusReply(s.executor.Run(ctx, cmd)), nil
}

func (s *step7Server) list(ctx context.Context, cmd domain.Command) (*step7.ListReply, error) {
	return ListReply(s.executor.List(ctx, cmd)), nil
}

// StatusReply convierte un sobre de estado en su mensaje de cable.
func StatusReply(env domain.StatusEnvelope) *step7.StatusReply {
	log := env.Log
	if log == nil {
		log = []string{}
	}
	return &step7.StatusReply{ExitCode: env.ExitCode, Log: log}
}

// ListReply convierte un sobre de enumeración en su mensaje de cable. Los
// elementos solo se envían si el código de salida es cero.
func ListReply(env domain.ListEnvelope) *step7.ListReply {
	items := env.Items
	if !env.OK() || items == nil {
		items = []string{}
	}
	return &step7.ListReply{Status: StatusReply(env.Status), Items: items}
}
