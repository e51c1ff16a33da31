package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestOperationTable(t *testing.T) {
	ops := AllOperations()
	require.Len(t, ops, 14)

	enumerations := 0
	for _, op := range ops {
		require.True(t, op.Valid(), op.String())
		parsed, ok := ParseOperation(op.String())
		require.True(t, ok)
		require.Equal(t, op, parsed)
		parsed, ok = ParseOperation(op.Verb())
		require.True(t, ok)
		require.Equal(t, op, parsed)
		if op.Kind() == KindEnumeration {
			enumerations++
		}
	}
	require.Equal(t, 5, enumerations)

	_, ok := ParseOperation("deleteEverything")
	require.False(t, ok)
	require.Equal(t, "Unknown", OpUnknown.String())
}

func TestCommandValidate(t *testing.T) {
	t.Run("Valid commands", func(t *testing.T) {
		for _, cmd := range []Command{
			ListProjects(),
			ListPrograms("ZEn01_10_STEP7__Com_SFB"),
			CreateProject("NewProj", "C:/Workspace"),
			ImportLibBlocks("P", "Lib", "LibProg", "S7 Program(1)", false),
			ImportSymbols("P", "C:/symbols.sdf", "S7 Program(1)", true),
			CompileSources("P", "S7 Program(1)", []string{"FC1"}),
		} {
			require.NoError(t, cmd.Validate(), cmd.String())
		}
	})

	t.Run("Empty required parameter", func(t *testing.T) {
		err := ImportLibSources("P", "", "LibProg", "S7 Program(1)", true).Validate()
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		require.Equal(t, ExitUsage, exitErr.Code)
		require.Contains(t, exitErr.Msg, `"libraryName"`)
	})

	t.Run("Compile without sources", func(t *testing.T) {
		err := CompileSources("P", "S7 Program(1)", nil).Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), `"sources"`)
	})

	t.Run("Unknown operation", func(t *testing.T) {
		require.Error(t, Command{Op: Operation(99)}.Validate())
	})
}

func TestCommandParamsKeepDeclarationOrder(t *testing.T) {
	cmd := ImportSymbols("P", "C:/symbols.sdf", "S7 Program(1)", false)
	require.Equal(t, []Param{
		{"project", "P"},
		{"symbols", "C:/symbols.sdf"},
		{"program", "S7 Program(1)"},
	}, cmd.Params())
	require.Equal(t, `ImportSymbols project="P" symbols="C:/symbols.sdf" program="S7 Program(1)"`, cmd.String())
}

func TestCompileSourcesCopiesSlice(t *testing.T) {
	sources := []string{"FC1", "OB1"}
	cmd := CompileSources("P", "S7 Program(1)", sources)
	sources[0] = "changed"
	require.Equal(t, []string{"FC1", "OB1"}, cmd.Sources)
}

func TestStatusEnvelopeErr(t *testing.T) {
	require.NoError(t, StatusEnvelope{ExitCode: ExitOK, Log: []string{"done"}}.Err())

	err := StatusEnvelope{ExitCode: 1, Log: []string{"Creating", "Could not create project: Project exists"}}.Err()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, int32(1), exitErr.Code)
	require.Equal(t, "exit code 1: Could not create project: Project exists", err.Error())

	err = StatusEnvelope{ExitCode: -1}.Err()
	require.Contains(t, err.Error(), "no diagnostic output")
}

func TestTranscriptKeepsOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Add("first\r\n")
	tr.Addf("second %d", 2)

	lines := tr.Lines()
	require.Equal(t, []string{"first", "second 2"}, lines)
	lines[0] = "mutated"
	require.Equal(t, "first", tr.Lines()[0])
	require.Equal(t, 2, tr.Len())
	require.NotNil(t, NewTranscript().Lines())
}
