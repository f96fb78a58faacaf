package main

import (
	"fmt"
	"github.com/Borislavv/go-ash-log"
	"github.com/Borislavv/go-ash-log/config"
	"github.com/Borislavv/go-ash-log/internal/greeting"
	"github.com/Borislavv/go-ash-log/model"
	"github.com/spf13/cobra"
	"io"
)

// without arguments the world is greeted and then nobody, which logs a warning
var defaultNames = []string{"World", ""}

type rootFlags struct {
	env         string
	pathsFile   string
	formatsFile string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "greeter [name...]",
		Short:         "Greet people and log every greeting per environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreeter(out, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.env, "env", model.Development.String(), "Logging environment: development, production or test")
	cmd.Flags().StringVar(&flags.pathsFile, "paths", config.DefaultPathsFile, "Log paths configuration file")
	cmd.Flags().StringVar(&flags.formatsFile, "formats", config.DefaultFormatsFile, "Log formats configuration file")

	return cmd
}

func runGreeter(out io.Writer, flags rootFlags, names []string) error {
	env, err := model.ParseEnv(flags.env)
	if err != nil {
		return err
	}

	logger, err := ashlog.New(env, &config.Logger{
		PathsFile:   flags.pathsFile,
		FormatsFile: flags.formatsFile,
	}, nil)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if len(names) == 0 {
		names = defaultNames
	}

	for _, name := range names {
		if name == "" {
			err = logger.Warning("No name provided to greet()")
		} else {
			err = logger.Info("Greeting user: " + name)
		}
		if err != nil {
			return fmt.Errorf("log greeting: %w", err)
		}

		if _, err = fmt.Fprintln(out, greeting.Greet(name)); err != nil {
			return err
		}
	}

	return nil
}
