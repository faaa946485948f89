package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"galogen/internal/app"
)

type generateOptions struct {
	Registry       string
	API            string
	Version        string
	Profile        string
	Filename       string
	Generator      string
	Extensions     []string
	OutputDir      string
	Strict         bool
	ListGenerators bool
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	defaults := defaultGenerateFlags()
	cmd.Flags().StringVar(&opts.API, "api", defaults.API, "API name (gl, gles1, gles2, glsc2)")
	cmd.Flags().StringVar(&opts.Version, "ver", "", "API version as major.minor (default depends on --api)")
	cmd.Flags().StringVar(&opts.Profile, "profile", defaults.Profile, "API profile (core or compatibility)")
	cmd.Flags().StringVar(&opts.Filename, "filename", "", "Base name of generated files (default <api>_<ver>_<profile>)")
	cmd.Flags().StringVar(&opts.Generator, "generator", defaults.Generator, "Output generator")
	cmd.Flags().StringSliceVar(&opts.Extensions, "exts", nil, "Comma-separated extensions without the GL_ prefix")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", defaults.OutputDir, "Directory for generated files")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when two variants of an entity match the API")
	cmd.Flags().BoolVar(&opts.ListGenerators, "list-generators", false, "List available generators and exit")

	_ = viper.BindPFlag("api", cmd.Flags().Lookup("api"))
	_ = viper.BindPFlag("ver", cmd.Flags().Lookup("ver"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("filename", cmd.Flags().Lookup("filename"))
	_ = viper.BindPFlag("generator", cmd.Flags().Lookup("generator"))
	_ = viper.BindPFlag("exts", cmd.Flags().Lookup("exts"))
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	if strings.HasPrefix(opts.Registry, "--") {
		log.Ctx(ctx).Warn().
			Str("registry", opts.Registry).
			Msg("registry path starts with --, flags may be in the wrong position")
	}
	service := app.NewService()
	_, err := service.Generate(ctx, app.GenerateRequest{
		RegistryPath: opts.Registry,
		API:          resolveString(cmd, opts.API, "api", "api"),
		Version:      resolveString(cmd, opts.Version, "ver", "ver"),
		Profile:      resolveString(cmd, opts.Profile, "profile", "profile"),
		Filename:     resolveString(cmd, opts.Filename, "filename", "filename"),
		Generator:    resolveString(cmd, opts.Generator, "generator", "generator"),
		Extensions:   resolveStrings(cmd, opts.Extensions, "exts", "exts"),
		OutputDir:    resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
		Strict:       resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Generation finished successfully!")
	return nil
}

func runListGenerators(cmd *cobra.Command) error {
	for _, name := range app.NewService().ListGenerators() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
