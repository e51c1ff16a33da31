package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/adapters/grpc/client"
	"dev.rubentxu.step7-service/internal/adapters/logger"
	"dev.rubentxu.step7-service/internal/config"
	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/version"
)

// exitUnavailable (EX_UNAVAILABLE de sysexits.h) indica que la llamada no
// llegó a producir un sobre.
const exitUnavailable = 69

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run ejecuta el cliente y devuelve el código de salida del proceso: el del
// sobre recibido, ExitUsage para errores de uso y exitUnavailable si la
// llamada no llegó a producir un sobre.
func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("s7client", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "config file; defaults to $"+config.EnvConfigPath)
	addr := global.String("addr", "", "server address (overrides client.address)")
	timeout := global.Duration("timeout", 0, "call deadline (overrides client.timeout)")
	logLevel := global.String("log-level", "warn", "client log level")
	global.Usage = func() { printUsage(stderr) }
	if err := global.Parse(args); err != nil {
		return int(domain.ExitUsage)
	}
	if global.NArg() == 0 {
		printUsage(stderr)
		return int(domain.ExitUsage)
	}

	name, rest := global.Arg(0), global.Args()[1:]
	if name == "version" {
		fmt.Fprintf(stdout, "s7client %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return int(domain.ExitOK)
	}
	sub, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		printUsage(stderr)
		return int(domain.ExitUsage)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	build := sub.build(fs)
	if err := fs.Parse(rest); err != nil {
		return int(domain.ExitUsage)
	}
	cmd := build()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return int(domain.ExitUsage)
	}
	if *addr != "" {
		cfg.Client.Address = *addr
	}
	deadline := cfg.Client.TimeoutDuration()
	if *timeout > 0 {
		deadline = *timeout
	}

	log, err := logger.New(logger.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return int(domain.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	c, err := client.Dial(cfg.Client.Address, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUnavailable
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()
	return execute(ctx, c, cmd, stdout, stderr)
}

func execute(ctx context.Context, c *client.Step7Client, cmd domain.Command, stdout, stderr io.Writer) int {
	printLine := func(line string) { fmt.Fprintln(stderr, line) }

	var err error
	if cmd.Op.Kind() == domain.KindEnumeration {
		var env domain.ListEnvelope
		if env, err = c.List(ctx, cmd); err == nil {
			var items []string
			items, err = client.CheckList(env, printLine)
			for _, item := range items {
				fmt.Fprintln(stdout, item)
			}
		}
	} else {
		var env domain.StatusEnvelope
		if env, err = c.Run(ctx, cmd); err == nil {
			err = client.CheckStatus(env, printLine)
		}
	}
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return int(domain.ExitOK)
	}
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return processCode(exitErr.Code)
	}
	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUnavailable
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return int(domain.ExitUsage)
}

// processCode ajusta un código de salida de la aplicación al rango de un
// proceso (1..255); los valores fuera de rango se reportan como fallo.
func processCode(code int32) int {
	if code <= 0 || code > 255 {
		return int(domain.ExitFailure)
	}
	return int(code)
}
