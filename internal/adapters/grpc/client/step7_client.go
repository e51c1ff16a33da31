package client

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"dev.rubentxu.step7-service/internal/adapters/grpc/protos/step7"
	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

// TransportError indica que la llamada no llegó a producir un sobre: el
// servidor no es alcanzable, se agotó el plazo del cliente o el servidor
// respondió con un estado gRPC distinto de OK.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %s", e.Method, status.Convert(e.Err).Message())
}

func (e *TransportError) Unwrap() error { return e.Err }

// Step7Client encapsula el stub gRPC del servicio Step7.
type Step7Client struct {
	conn   *grpc.ClientConn
	client step7.Step7Client
	logger ports.Logger
}

// Dial abre una conexión sin TLS con el servidor en addr. La conexión es
// perezosa: los errores de red aparecen en la primera llamada.
func Dial(addr string, logger ports.Logger, opts ...grpc.DialOption) (*Step7Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create client for %s", addr)
	}
	return NewStep7Client(conn, logger), nil
}

// NewStep7Client crea el cliente sobre una conexión existente.
func NewStep7Client(conn *grpc.ClientConn, logger ports.Logger) *Step7Client {
	return &Step7Client{
		conn:   conn,
		client: step7.NewStep7Client(conn),
		logger: logger.With("component", "step7_client"),
	}
}

func (c *Step7Client) Close() error {
	return c.conn.Close()
}

// Run envía una acción y devuelve el sobre recibido. El error solo es
// distinto de nil para fallos de transporte.
func (c *Step7Client) Run(ctx context.Context, cmd domain.Command) (domain.StatusEnvelope, error) {
	if cmd.Op.Kind() != domain.KindAction || !cmd.Op.Valid() {
		return domain.StatusEnvelope{}, errors.Errorf("%s is not an action operation", cmd.Op)
	}
	reply, err := c.invokeAction(ctx, cmd)
	if err != nil {
		c.logger.Debug("rpc failed", "method", cmd.Op.String(), "error", err)
		return domain.StatusEnvelope{}, &TransportError{Method: cmd.Op.String(), Err: err}
	}
	return statusEnvelope(reply), nil
}

// List envía una enumeración y devuelve el sobre recibido. Si el código de
// salida no es cero, los elementos se descartan.
func (c *Step7Client) List(ctx context.Context, cmd domain.Command) (domain.ListEnvelope, error) {
	if cmd.Op.Kind() != domain.KindEnumeration || !cmd.Op.Valid() {
		return domain.ListEnvelope{}, errors.Errorf("%s is not an enumeration operation", cmd.Op)
	}
	reply, err := c.invokeList(ctx, cmd)
	if err != nil {
		c.logger.Debug("rpc failed", "method", cmd.Op.String(), "error", err)
		return domain.ListEnvelope{}, &TransportError{Method: cmd.Op.String(), Err: err}
	}
	env := domain.ListEnvelope{Status: statusEnvelope(reply.GetStatus()), Items: []string{}}
	if env.OK() {
		env.Items = nonNil(reply.GetItems())
	}
	return env, nil
}

func (c *Step7Client) invokeList(ctx context.Context, cmd domain.Command) (*step7.ListReply, error) {
	switch cmd.Op {
	case domain.OpListProjects:
		return c.client.ListProjects(ctx, &step7.ListProjectsRequest{})
	case domain.OpListPrograms:
		return c.client.ListPrograms(ctx, &step7.ListProgramsRequest{Project: cmd.Project})
	case domain.OpListContainers:
		return c.client.ListContainers(ctx, &step7.ListContainersRequest{Project: cmd.Project})
	case domain.OpListStations:
		return c.client.ListStations(ctx, &step7.ListStationsRequest{Project: cmd.Project})
	case domain.OpListModules:
		return c.client.ListModules(ctx, &step7.ListModulesRequest{Project: cmd.Project})
	}
	return nil, errors.Errorf("unsupported enumeration %s", cmd.Op)
}

func (c *Step7Client) invokeAction(ctx context.Context, cmd domain.Command) (*step7.StatusReply, error) {
	switch cmd.Op {
	case domain.OpCreateProject:
		return c.client.CreateProject(ctx, &step7.CreateProjectRequest{ProjectName: cmd.ProjectName, ProjectDir: cmd.ProjectDir})
	case domain.OpCreateLibrary:
		return c.client.CreateLibrary(ctx, &step7.CreateLibraryRequest{ProjectName: cmd.ProjectName, ProjectDir: cmd.ProjectDir})
	case domain.OpRegisterProject:
		return c.client.RegisterProject(ctx, &step7.RegisterProjectRequest{ProjectFilePath: cmd.ProjectFilePath})
	case domain.OpRemoveProject:
		return c.client.RemoveProject(ctx, &step7.RemoveProjectRequest{Project: cmd.Project})
	case domain.OpImportSourcesDir:
		return c.client.ImportSourcesDir(ctx, &step7.ImportSourcesDirRequest{
			Project:    cmd.Project,
			Program:    cmd.Program,
			SourcesDir: cmd.SourcesDir,
			Force:      cmd.Force,
		})
	case domain.OpImportLibSources:
		return c.client.ImportLibSources(ctx, importLibRequest(cmd))
	case domain.OpImportLibBlocks:
		return c.client.ImportLibBlocks(ctx, importLibRequest(cmd))
	case domain.OpImportSymbols:
		return c.client.ImportSymbols(ctx, &step7.ImportSymbolsRequest{
			Project:        cmd.Project,
			Symbols:        cmd.SymbolFile,
			Program:        cmd.Program,
			AllowConflicts: cmd.AllowConflicts,
		})
	case domain.OpCompileSources:
		return c.client.CompileSources(ctx, &step7.CompileSourcesRequest{
			Project: cmd.Project,
			Program: cmd.Program,
			Sources: cmd.Sources,
		})
	}
	return nil, errors.Errorf("unsupported action %s", cmd.Op)
}

func importLibRequest(cmd domain.Command) *step7.ImportLibRequest {
	return &step7.ImportLibRequest{
		Project:        cmd.Project,
		LibraryName:    cmd.Library,
		LibraryProgram: cmd.LibraryProgram,
		Program:        cmd.Program,
		Force:          cmd.Force,
	}
}

func statusEnvelope(reply *step7.StatusReply) domain.StatusEnvelope {
	return domain.StatusEnvelope{ExitCode: reply.GetExitCode(), Log: nonNil(reply.GetLog())}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
