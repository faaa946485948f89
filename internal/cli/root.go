package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"galogen/internal/policies"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "GALOGEN"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

// Execute runs the command line. Any error is fatal: it is printed to
// stderr and the process exits with status 1.
func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "galogen <registry.xml>",
		Short: "Generate OpenGL loader code from the Khronos XML registry",
		Example: "  galogen gl.xml --api gl --ver 4.5 --profile core --filename gl\n" +
			"  galogen gl.xml --api gles2 --exts OES_EGL_image_external --generator c_nulldriver",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ListGenerators {
				return runListGenerators(cmd)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			opts.Registry = args[0]
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	addGenerateFlags(cmd, &opts)
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("galogen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/galogen")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging logs to stderr so stdout only carries command output.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL ERROR: %s\n", errorMessage(err))
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func defaultGenerateFlags() generateOptions {
	return generateOptions{
		API:       policies.DefaultAPI,
		Profile:   string(policies.DefaultProfile),
		Generator: policies.DefaultGenerator,
		OutputDir: ".",
	}
}
