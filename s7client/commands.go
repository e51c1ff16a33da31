package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"dev.rubentxu.step7-service/internal/core/domain"
)

// command describe un subcomando: sus flags y cómo construir el domain.Command.
type command struct {
	name  string
	usage string
	build func(fs *flag.FlagSet) func() domain.Command
}

func projectFlag(fs *flag.FlagSet) *string {
	return fs.String("project", "", "project name or path to its .s7p file")
}

func listCommand(name string, ctor func(string) domain.Command) command {
	return command{
		name:  name,
		usage: "-project P",
		build: func(fs *flag.FlagSet) func() domain.Command {
			project := projectFlag(fs)
			return func() domain.Command { return ctor(*project) }
		},
	}
}

func newProjectCommand(name string, ctor func(string, string) domain.Command) command {
	return command{
		name:  name,
		usage: "-name N -dir D",
		build: func(fs *flag.FlagSet) func() domain.Command {
			projectName := fs.String("name", "", "project name (at most 8 characters)")
			projectDir := fs.String("dir", "", "parent directory")
			return func() domain.Command { return ctor(*projectName, *projectDir) }
		},
	}
}

func importLibCommand(name string, ctor func(string, string, string, string, bool) domain.Command) command {
	return command{
		name:  name,
		usage: "-project P -library L -library-program LP -program PR [-force]",
		build: func(fs *flag.FlagSet) func() domain.Command {
			project := projectFlag(fs)
			library := fs.String("library", "", "library name or path")
			libraryProgram := fs.String("library-program", "", "program inside the library")
			program := fs.String("program", "", "destination program")
			force := fs.Bool("force", false, "overwrite existing objects")
			return func() domain.Command {
				return ctor(*project, *library, *libraryProgram, *program, *force)
			}
		},
	}
}

var commands = map[string]command{}

func register(cmds ...command) {
	for _, c := range cmds {
		commands[c.name] = c
	}
}

func init() {
	register(
		command{
			name:  "list-projects",
			usage: "",
			build: func(*flag.FlagSet) func() domain.Command { return domain.ListProjects },
		},
		listCommand("list-programs", domain.ListPrograms),
		listCommand("list-containers", domain.ListContainers),
		listCommand("list-stations", domain.ListStations),
		listCommand("list-modules", domain.ListModules),
		newProjectCommand("create-project", domain.CreateProject),
		newProjectCommand("create-library", domain.CreateLibrary),
		command{
			name:  "register-project",
			usage: "-path FILE",
			build: func(fs *flag.FlagSet) func() domain.Command {
				path := fs.String("path", "", "path to the .s7p or .s7l file")
				return func() domain.Command { return domain.RegisterProject(*path) }
			},
		},
		listCommand("remove-project", domain.RemoveProject),
		command{
			name:  "import-sources-dir",
			usage: "-project P -program PR -dir D [-force]",
			build: func(fs *flag.FlagSet) func() domain.Command {
				project := projectFlag(fs)
				program := fs.String("program", "", "destination program")
				dir := fs.String("dir", "", "directory with the source files")
				force := fs.Bool("force", false, "overwrite existing sources")
				return func() domain.Command { return domain.ImportSourcesDir(*project, *program, *dir, *force) }
			},
		},
		importLibCommand("import-lib-sources", domain.ImportLibSources),
		importLibCommand("import-lib-blocks", domain.ImportLibBlocks),
		command{
			name:  "import-symbols",
			usage: "-project P -symbols FILE -program PR [-allow-conflicts]",
			build: func(fs *flag.FlagSet) func() domain.Command {
				project := projectFlag(fs)
				symbols := fs.String("symbols", "", "symbol table file (.asc, .dif, .sdf, .seq)")
				program := fs.String("program", "", "destination program")
				allowConflicts := fs.Bool("allow-conflicts", false, "import even if symbols conflict")
				return func() domain.Command {
					return domain.ImportSymbols(*project, *symbols, *program, *allowConflicts)
				}
			},
		},
		command{
			name:  "compile-sources",
			usage: "-project P -program PR -sources S1,S2",
			build: func(fs *flag.FlagSet) func() domain.Command {
				project := projectFlag(fs)
				program := fs.String("program", "", "program containing the sources")
				sources := fs.String("sources", "", "comma-separated source names, compiled in order")
				return func() domain.Command {
					return domain.CompileSources(*project, *program, splitList(*sources))
				}
			},
		},
	)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: s7client [-addr host:port] [-timeout d] [-config file] <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-20s %s\n", name, commands[name].usage)
	}
	fmt.Fprintf(w, "  %-20s\n", "version")
}
