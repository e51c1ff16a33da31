package step7

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestProjectRequestGoldenBytes(t *testing.T) {
	b, err := proto.Marshal(&ListProgramsRequest{Project: "ab"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x02, 'a', 'b'}, b)

	// Mismo layout que cualquier mensaje con un único string en el campo 1.
	wrapped, err := proto.Marshal(wrapperspb.String("ZEn01_10_STEP7__Com_SFB"))
	require.NoError(t, err)
	b, err = proto.Marshal(&RemoveProjectRequest{Project: "ZEn01_10_STEP7__Com_SFB"})
	require.NoError(t, err)
	require.Equal(t, wrapped, b)
}

func TestDefaultValuesAreNotEmitted(t *testing.T) {
	for _, m := range []proto.Message{&ListProjectsRequest{}, &StatusReply{}, &ImportSourcesDirRequest{}} {
		b, err := proto.Marshal(m)
		require.NoError(t, err)
		require.Empty(t, b)
	}
}

func TestNegativeExitCode(t *testing.T) {
	wrapped, err := proto.Marshal(wrapperspb.Int32(-3))
	require.NoError(t, err)

	b, err := proto.Marshal(&StatusReply{ExitCode: -3})
	require.NoError(t, err)
	require.Equal(t, wrapped, b)

	var decoded StatusReply
	require.NoError(t, proto.Unmarshal(b, &decoded))
	require.Equal(t, int32(-3), decoded.GetExitCode())
}

func TestListReplyWithEmptyStatus(t *testing.T) {
	b, err := proto.Marshal(&ListReply{Status: &StatusReply{}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x00}, b)

	var decoded ListReply
	require.NoError(t, proto.Unmarshal(b, &decoded))
	require.NotNil(t, decoded.GetStatus())
	require.Equal(t, int32(0), decoded.GetStatus().GetExitCode())
	require.Empty(t, decoded.GetItems())
}

func TestMessagesSurviveTheWire(t *testing.T) {
	for name, in := range map[string]proto.Message{
		"ListReply": &ListReply{
			Status: &StatusReply{ExitCode: 0, Log: []string{"Program S7 Program(1)", "", "Program S7 Program(2)"}},
			Items:  []string{"S7 Program(1)", "S7 Program(2)"},
		},
		"ImportLibRequest": &ImportLibRequest{
			Project: "P", LibraryName: "Lib", LibraryProgram: "LibProg", Program: "S7 Program(1)", Force: true,
		},
		"ImportSymbolsRequest": &ImportSymbolsRequest{
			Project: "P", Symbols: "C:/s.sdf", Program: "S7", AllowConflicts: true,
		},
		"CompileSourcesRequest": &CompileSourcesRequest{
			Project: "P", Program: "S7 Program(1)", Sources: []string{"FC1", "OB1"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			b, err := proto.Marshal(in)
			require.NoError(t, err)
			out := in.ProtoReflect().New().Interface()
			require.NoError(t, proto.Unmarshal(b, out))
			require.True(t, proto.Equal(in, out), "got %v", out)
		})
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b, err := proto.Marshal(&CreateProjectRequest{ProjectName: "NewProj", ProjectDir: "C:/Workspace"})
	require.NoError(t, err)
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendString(b, "future field")

	var out CreateProjectRequest
	require.NoError(t, proto.Unmarshal(b, &out))
	require.Equal(t, "NewProj", out.GetProjectName())
	require.Equal(t, "C:/Workspace", out.GetProjectDir())
}

func TestTruncatedInputFails(t *testing.T) {
	var out ListProgramsRequest
	require.Error(t, proto.Unmarshal([]byte{0x0a, 0x05, 'a'}, &out))
}

func TestFileDescriptor(t *testing.T) {
	svc := File_step7_proto.Services().ByName("Step7")
	require.NotNil(t, svc)
	require.Equal(t, ServiceName, string(svc.FullName()))
	require.Equal(t, 14, svc.Methods().Len())
	require.Len(t, Step7_ServiceDesc.Methods, 14)

	m := svc.Methods().ByName("ImportLibBlocks")
	require.Equal(t, "step7.ImportLibRequest", string(m.Input().FullName()))
	require.Equal(t, "step7.StatusReply", string(m.Output().FullName()))

	status := (&ListReply{}).ProtoReflect().Descriptor().Fields().ByName("status")
	require.Equal(t, "step7.StatusReply", string(status.Message().FullName()))
}
