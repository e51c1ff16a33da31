package server_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"dev.rubentxu.step7-service/internal/adapters/grpc/client"
	"dev.rubentxu.step7-service/internal/adapters/grpc/protos/step7"
	"dev.rubentxu.step7-service/internal/adapters/grpc/server"
	"dev.rubentxu.step7-service/internal/adapters/logger"
	"dev.rubentxu.step7-service/internal/adapters/tool"
	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/usecase"
)

const bufSize = 1024 * 1024

type harness struct {
	lis    *bufconn.Listener
	srv    *grpc.Server
	client *client.Step7Client
}

func startHarness(t *testing.T, executor server.Executor) *harness {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	srv, _ := server.NewGRPCServer(executor, logger.NewNop())
	go func() { _ = srv.Serve(lis) }()

	c, err := client.Dial("passthrough:///bufnet", logger.NewNop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return &harness{lis: lis, srv: srv, client: c}
}

// recordingExecutor guarda el último comando recibido y responde con un sobre fijo.
type recordingExecutor struct {
	mu   sync.Mutex
	last domain.Command
}

func (e *recordingExecutor) Run(_ context.Context, cmd domain.Command) domain.StatusEnvelope {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = cmd
	return domain.StatusEnvelope{ExitCode: domain.ExitOK, Log: []string{cmd.String()}}
}

func (e *recordingExecutor) List(_ context.Context, cmd domain.Command) domain.ListEnvelope {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = cmd
	return domain.ListEnvelope{Status: domain.StatusEnvelope{Log: []string{cmd.String()}}, Items: []string{"a", ""}}
}

func (e *recordingExecutor) lastCommand() domain.Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

type Step7ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	memory  *tool.MemoryTool
	harness *harness
}

func TestStep7ServiceSuite(t *testing.T) {
	suite.Run(t, new(Step7ServiceTestSuite))
}

func (s *Step7ServiceTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 10*time.Second)
	s.memory = tool.NewMemoryTool(logger.NewNop())
	dispatcher := usecase.NewDispatcher(s.memory, logger.NewNop(), usecase.DispatcherConfig{MaxConcurrent: 2})
	s.harness = startHarness(s.T(), dispatcher)
}

func (s *Step7ServiceTestSuite) TearDownTest() {
	s.cancel()
}

func (s *Step7ServiceTestSuite) TestEmptyRegistry() {
	env, err := s.harness.client.ListProjects(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.ExitOK, env.Status.ExitCode)
	s.NotNil(env.Status.Log)
	s.Empty(env.Status.Log)
	s.NotNil(env.Items)
	s.Empty(env.Items)
}

func (s *Step7ServiceTestSuite) TestCreateProjectWithLongName() {
	env, err := s.harness.client.CreateProject(s.ctx, "Step7ProjectName", "C:/jpechirr/Workspace")
	s.Require().NoError(err)
	s.NotEqual(domain.ExitOK, env.ExitCode)
	s.Require().NotEmpty(env.Log)
	s.Contains(env.Log[len(env.Log)-1], "Step7ProjectName")

	var lines []string
	err = client.CheckStatus(env, func(line string) { lines = append(lines, line) })
	var exitErr *domain.ExitError
	s.Require().True(errors.As(err, &exitErr))
	s.Equal(env.ExitCode, exitErr.Code)
	s.Equal(env.Log, lines)
}

func (s *Step7ServiceTestSuite) TestCreateThenDuplicate() {
	first, err := s.harness.client.CreateProject(s.ctx, "NewProj", "C:/jpechirr/Workspace")
	s.Require().NoError(err)
	s.Require().True(first.OK())

	second, err := s.harness.client.CreateProject(s.ctx, "NewProj", "C:/jpechirr/Workspace")
	s.Require().NoError(err)
	s.Equal(domain.ExitFailure, second.ExitCode)
	s.Contains(second.Log[len(second.Log)-1], "Project exists")

	env, err := s.harness.client.ListProjects(s.ctx)
	s.Require().NoError(err)
	items, err := client.CheckList(env, nil)
	s.Require().NoError(err)
	s.Equal([]string{"NewProj"}, items)
}

func (s *Step7ServiceTestSuite) TestListProgramsIsIdempotent() {
	s.memory.AddProject(tool.MemoryProject{
		Name: "ZEn01_10_STEP7__Com_SFB",
		Dir:  "C:/Workspace",
		Programs: []tool.MemoryProgram{
			{Name: "S7 Program(1)"},
			{Name: "S7 Program(2)"},
		},
	})

	first, err := s.harness.client.ListPrograms(s.ctx, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Require().True(first.OK())
	s.Equal([]string{"S7 Program(1)", "S7 Program(2)"}, first.Items)

	second, err := s.harness.client.ListPrograms(s.ctx, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *Step7ServiceTestSuite) TestFailedEnumerationHasNoItems() {
	env, err := s.harness.client.ListStations(s.ctx, "Missing")
	s.Require().NoError(err)
	s.Equal(domain.ExitFailure, env.Status.ExitCode)
	s.Empty(env.Items)

	items, err := client.CheckList(env, nil)
	s.Nil(items)
	s.Require().Error(err)
}

func (s *Step7ServiceTestSuite) TestMissingParameterIsUsageError() {
	env, err := s.harness.client.RemoveProject(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(domain.ExitUsage, env.ExitCode)
}

// rawConn abre una conexión gRPC sin envolver contra el servidor del harness.
func (s *Step7ServiceTestSuite) rawConn() *grpc.ClientConn {
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.harness.lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *Step7ServiceTestSuite) TestHealth() {
	resp, err := healthpb.NewHealthClient(s.rawConn()).Check(s.ctx, &healthpb.HealthCheckRequest{Service: step7.ServiceName})
	s.Require().NoError(err)
	s.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func (s *Step7ServiceTestSuite) TestReflectionDescribesService() {
	stream, err := reflectionpb.NewServerReflectionClient(s.rawConn()).ServerReflectionInfo(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = stream.CloseSend() }()

	s.Require().NoError(stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: step7.ServiceName},
	}))
	resp, err := stream.Recv()
	s.Require().NoError(err)
	s.Require().Nil(resp.GetErrorResponse())

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	s.Require().NotEmpty(files)
	var fd descriptorpb.FileDescriptorProto
	s.Require().NoError(proto.Unmarshal(files[0], &fd))
	s.Equal("step7.proto", fd.GetName())
	s.Require().Len(fd.GetService(), 1)
	s.Equal("Step7", fd.GetService()[0].GetName())
	s.Len(fd.GetService()[0].GetMethod(), 14)
}

func (s *Step7ServiceTestSuite) TestTransportFailureIsNotAnEnvelope() {
	s.harness.srv.Stop()

	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()
	_, err := s.harness.client.ListProjects(ctx)

	var transportErr *client.TransportError
	s.Require().True(errors.As(err, &transportErr))
	s.Equal("ListProjects", transportErr.Method)
	code := status.Code(transportErr.Err)
	s.True(code == codes.Unavailable || code == codes.DeadlineExceeded, code.String())

	var exitErr *domain.ExitError
	s.False(errors.As(err, &exitErr))
}

func TestRequestFieldsReachTheExecutor(t *testing.T) {
	executor := &recordingExecutor{}
	h := startHarness(t, executor)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	actions := []domain.Command{
		domain.CreateProject("NewProj", "C:/Workspace"),
		domain.CreateLibrary("NewLib", "C:/Libs"),
		domain.RegisterProject("C:/Workspace/Other/Other.s7p"),
		domain.RemoveProject("Other"),
		domain.ImportSourcesDir("P", "S7 Program(1)", "C:/sources", true),
		domain.ImportLibSources("P", "Lib", "LibProg", "S7 Program(1)", true),
		domain.ImportLibBlocks("P", "Lib", "LibProg", "S7 Program(1)", false),
		domain.ImportSymbols("P", "C:/symbols.sdf", "S7 Program(1)", true),
		domain.CompileSources("P", "S7 Program(1)", []string{"FC1", "OB1"}),
	}
	for _, cmd := range actions {
		env, err := h.client.Run(ctx, cmd)
		if err != nil {
			t.Fatalf("%s: %v", cmd.Op, err)
		}
		if got := executor.lastCommand(); !commandsEqual(cmd, got) {
			t.Fatalf("%s: executor received %+v, want %+v", cmd.Op, got, cmd)
		}
		if len(env.Log) != 1 || env.Log[0] != cmd.String() {
			t.Fatalf("%s: unexpected log %v", cmd.Op, env.Log)
		}
	}

	enumerations := []domain.Command{
		domain.ListProjects(),
		domain.ListPrograms("P"),
		domain.ListContainers("P"),
		domain.ListStations("P"),
		domain.ListModules("P"),
	}
	for _, cmd := range enumerations {
		env, err := h.client.List(ctx, cmd)
		if err != nil {
			t.Fatalf("%s: %v", cmd.Op, err)
		}
		if got := executor.lastCommand(); !commandsEqual(cmd, got) {
			t.Fatalf("%s: executor received %+v, want %+v", cmd.Op, got, cmd)
		}
		// Los elementos vacíos sobreviven al cable.
		if len(env.Items) != 2 || env.Items[0] != "a" || env.Items[1] != "" {
			t.Fatalf("%s: unexpected items %q", cmd.Op, env.Items)
		}
	}
}

func TestClientRejectsWrongKind(t *testing.T) {
	h := startHarness(t, &recordingExecutor{})

	if _, err := h.client.Run(context.Background(), domain.ListProjects()); err == nil {
		t.Fatal("expected error running an enumeration")
	}
	if _, err := h.client.List(context.Background(), domain.CreateProject("P", "D")); err == nil {
		t.Fatal("expected error listing an action")
	}
}

// staleItemsServer responde a ListStations con un fallo que aun así
// arrastra elementos.
type staleItemsServer struct {
	step7.UnimplementedStep7Server
}

func (staleItemsServer) ListStations(context.Context, *step7.ListStationsRequest) (*step7.ListReply, error) {
	return &step7.ListReply{
		Status: &step7.StatusReply{ExitCode: 1, Log: []string{"Could not find project X"}},
		Items:  []string{"stale"},
	}, nil
}

func TestClientDropsItemsOfFailedEnumeration(t *testing.T) {
	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	step7.RegisterStep7Server(srv, staleItemsServer{})
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	c, err := client.Dial("passthrough:///bufnet", logger.NewNop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	env, err := c.ListStations(context.Background(), "X")
	if err != nil {
		t.Fatalf("ListStations: %v", err)
	}
	if env.Status.ExitCode != 1 || len(env.Status.Log) != 1 {
		t.Fatalf("unexpected status %+v", env.Status)
	}
	if env.Items == nil || len(env.Items) != 0 {
		t.Fatalf("items must be empty on failure, got %q", env.Items)
	}
}

func commandsEqual(a, b domain.Command) bool {
	if a.String() != b.String() || a.Force != b.Force || a.AllowConflicts != b.AllowConflicts {
		return false
	}
	if len(a.Sources) != len(b.Sources) {
		return false
	}
	for i := range a.Sources {
		if a.Sources[i] != b.Sources[i] {
			return false
		}
	}
	return true
}
