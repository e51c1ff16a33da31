package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"dev.rubentxu.step7-service/internal/adapters/logger"
	"dev.rubentxu.step7-service/internal/core/domain"
)

type MemoryToolTestSuite struct {
	suite.Suite
	ctx  context.Context
	tool *MemoryTool
	log  *domain.Transcript
}

func TestMemoryToolSuite(t *testing.T) {
	suite.Run(t, new(MemoryToolTestSuite))
}

func (s *MemoryToolTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.log = domain.NewTranscript()
	s.tool = NewMemoryTool(logger.NewNop(),
		MemoryProject{
			Name: "ZEn01_10_STEP7__Com_SFB",
			Dir:  "C:/Workspace",
			Programs: []MemoryProgram{
				{Name: "S7 Program(1)", LogPath: `SIMATIC 300(1)\CPU 319-3 PN/DP\S7 Program(1)`, Containers: []string{"Sources", "Blocks"}, Sources: []string{"FC1"}},
				{Name: "S7 Program(2)", Containers: []string{"Symbols"}},
			},
			Stations: []string{"SIMATIC 300(1)"},
			Modules:  []string{"CPU 319-3 PN/DP"},
		},
		MemoryProject{
			Name:     "Lib",
			Dir:      "C:/Libs",
			Library:  true,
			Programs: []MemoryProgram{{Name: "LibProg", Sources: []string{"FB10", "FC1"}, Blocks: []string{"FB10"}}},
		},
	)
}

func (s *MemoryToolTestSuite) TestListProjectsInRegistrationOrder() {
	items, err := s.tool.ListProjects(s.ctx, s.log)
	s.Require().NoError(err)
	s.Equal([]string{"ZEn01_10_STEP7__Com_SFB", "Lib"}, items)
	s.Equal("Project Lib Path C:/Libs/Lib/Lib.s7l", s.log.Lines()[1])
}

func (s *MemoryToolTestSuite) TestListProgramsByNameOrPath() {
	items, err := s.tool.ListPrograms(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Equal([]string{"S7 Program(1)", "S7 Program(2)"}, items)

	items, err = s.tool.ListPrograms(s.ctx, domain.NewTranscript(), "C:/Workspace/ZEn01_10_STEP7__Com_SFB/ZEn01_10_STEP7__Com_SFB.s7p")
	s.Require().NoError(err)
	s.Len(items, 2)
}

func (s *MemoryToolTestSuite) TestListContainersStationsModules() {
	containers, err := s.tool.ListContainers(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Equal([]string{"Sources", "Blocks", "Symbols"}, containers)

	stations, err := s.tool.ListStations(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Equal([]string{"SIMATIC 300(1)"}, stations)

	modules, err := s.tool.ListModules(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB")
	s.Require().NoError(err)
	s.Equal([]string{"CPU 319-3 PN/DP"}, modules)
}

func (s *MemoryToolTestSuite) TestUnknownProject() {
	_, err := s.tool.ListStations(s.ctx, s.log, "Missing")
	s.Require().Error(err)
	s.Contains(err.Error(), "Could not find project Missing")
}

func (s *MemoryToolTestSuite) TestCreateProjectRules() {
	s.Require().NoError(s.tool.CreateProject(s.ctx, s.log, "NewProj", "C:/jpechirr/Workspace"))
	s.Equal([]string{"Created project C:/jpechirr/Workspace/NewProj/NewProj.s7p"}, s.log.Lines())

	err := s.tool.CreateProject(s.ctx, s.log, "NewProj", "C:/jpechirr/Workspace")
	s.Require().Error(err)
	s.Contains(err.Error(), "Project exists")

	err = s.tool.CreateProject(s.ctx, s.log, "Step7ProjectName", "C:/jpechirr/Workspace")
	s.Require().Error(err)
	s.Contains(err.Error(), "at most 8 characters")

	s.Require().NoError(s.tool.CreateLibrary(s.ctx, s.log, "NewLib", "C:/Libs"))
	items, _ := s.tool.ListProjects(s.ctx, domain.NewTranscript())
	s.Equal([]string{"ZEn01_10_STEP7__Com_SFB", "Lib", "NewProj", "NewLib"}, items)
}

func (s *MemoryToolTestSuite) TestRegisterAndRemoveProject() {
	s.Require().NoError(s.tool.RegisterProject(s.ctx, s.log, "D:/Projects/Other/Other.s7p"))
	_, err := s.tool.ListPrograms(s.ctx, s.log, "D:/Projects/Other/Other.s7p")
	s.Require().NoError(err)

	s.Require().Error(s.tool.RegisterProject(s.ctx, s.log, "D:/Projects/Other/Other.txt"))
	s.Require().Error(s.tool.RegisterProject(s.ctx, s.log, "E:/Other/Other.s7p"))

	s.Require().NoError(s.tool.RemoveProject(s.ctx, s.log, "Other"))
	s.Require().Error(s.tool.RemoveProject(s.ctx, s.log, "Other"))
}

func (s *MemoryToolTestSuite) TestImportSourcesDir() {
	dir := s.T().TempDir()
	for _, name := range []string{"OB1.scl", "FC2.awl", "README.md", "FC1.scl"} {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	err := s.tool.ImportSourcesDir(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", dir, false)
	s.Require().Error(err)
	s.Contains(err.Error(), "Source FC1 already exists")

	err = s.tool.ImportSourcesDir(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", `SIMATIC 300(1)\CPU 319-3 PN/DP\S7 Program(1)`, dir, true)
	s.Require().NoError(err)

	s.Require().NoError(s.tool.CompileSources(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", []string{"FC2", "OB1"}))
	s.Contains(s.log.Lines(), "Compiled source FC2")

	err = s.tool.CompileSources(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", []string{"FB99"})
	s.Require().Error(err)
}

func (s *MemoryToolTestSuite) TestImportFromLibrary() {
	err := s.tool.ImportLibSources(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(2)", "Lib", "LibProg", false)
	s.Require().NoError(err)
	s.Equal([]string{
		"Imported source FB10 from Lib:LibProg",
		"Imported source FC1 from Lib:LibProg",
	}, s.log.Lines())

	err = s.tool.ImportLibBlocks(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(2)", "Lib", "LibProg", false)
	s.Require().NoError(err)

	err = s.tool.ImportLibBlocks(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(2)", "Lib", "LibProg", false)
	s.Require().Error(err)
	s.Require().NoError(s.tool.ImportLibBlocks(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(2)", "Lib", "LibProg", true))

	err = s.tool.ImportLibSources(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(2)", "Lib", "Nope", true)
	s.Require().Error(err)
}

func (s *MemoryToolTestSuite) TestImportSymbols() {
	symbols := filepath.Join(s.T().TempDir(), "symbols.sdf")
	s.Require().NoError(os.WriteFile(symbols, []byte("x"), 0o600))

	s.Require().Error(s.tool.ImportSymbols(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", "symbols.csv", false))
	s.Require().Error(s.tool.ImportSymbols(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", filepath.Join(s.T().TempDir(), "missing.sdf"), false))

	s.Require().NoError(s.tool.ImportSymbols(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", symbols, false))
	s.Require().Error(s.tool.ImportSymbols(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", symbols, false))
	s.Require().NoError(s.tool.ImportSymbols(s.ctx, s.log, "ZEn01_10_STEP7__Com_SFB", "S7 Program(1)", symbols, true))
}

func (s *MemoryToolTestSuite) TestFactory() {
	tool, err := New(Config{Backend: BackendMemory}, logger.NewNop())
	s.Require().NoError(err)
	s.IsType(&MemoryTool{}, tool)

	_, err = New(Config{Backend: BackendExec}, logger.NewNop())
	s.Require().Error(err)

	_, err = New(Config{Backend: "com"}, logger.NewNop())
	s.Require().Error(err)
}
