package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/compozy/fixturegen/pkg/config"
	"github.com/compozy/fixturegen/pkg/logger"
	"github.com/compozy/fixturegen/pkg/version"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "fixturegen",
		Short:             "Generate populated test fixtures from Go types",
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobal,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.StringArray("config-set", nil, "Override a configuration key as key=value, e.g. text.length=12 (repeatable)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "Output logs in JSON format")
	flags.Bool("log-source", false, "Include source file and line in logs")

	root.AddCommand(
		TypesCmd(),
		PreviewCmd(),
		ConfigCmd(),
	)

	return root
}

// setupGlobal configures logging and stores the loaded configuration and the
// logger in the command context.
func setupGlobal(cmd *cobra.Command, _ []string) error {
	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetupLogger(logLevel, logJSON, logSource)

	cfg, meta, err := loadConfig(cmd, afero.NewOsFs())
	if err != nil {
		return err
	}
	ctx := config.ContextWithConfig(cmd.Context(), cfg)
	ctx = context.WithValue(ctx, metadataCtxKey, meta)
	ctx = logger.ContextWithLogger(ctx, logger.GetDefault())
	cmd.SetContext(ctx)
	return nil
}

type ctxKey string

const metadataCtxKey ctxKey = "config_metadata"

// loadConfig layers defaults, the --config file, the environment and
// --config-set assignments.
func loadConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, config.Metadata, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, config.Metadata{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	assignments, err := cmd.Flags().GetStringArray("config-set")
	if err != nil {
		return nil, config.Metadata{}, fmt.Errorf("failed to get config-set flag: %w", err)
	}
	var sources []config.Source
	if path != "" {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return nil, config.Metadata{}, fmt.Errorf("failed to check config file %s: %w", path, err)
		}
		if !exists {
			return nil, config.Metadata{}, fmt.Errorf("config file %s does not exist", path)
		}
		sources = append(sources, config.NewYAMLProvider(fs, path))
	}
	if len(assignments) > 0 {
		flags, err := parseConfigAssignments(assignments)
		if err != nil {
			return nil, config.Metadata{}, err
		}
		sources = append(sources, config.NewCLIProvider(flags))
	}
	svc := config.NewService()
	cfg, err := svc.Load(cmd.Context(), sources...)
	if err != nil {
		return nil, config.Metadata{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, svc.GetMetadata(), nil
}

func parseConfigAssignments(assignments []string) (map[string]any, error) {
	known := config.Keys()
	out := make(map[string]any, len(assignments))
	for _, a := range assignments {
		key, literal, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --config-set %q, expected key=value", a)
		}
		if !slices.Contains(known, key) {
			return nil, fmt.Errorf("unknown configuration key %q in --config-set", key)
		}
		var value any = literal
		if literal != "" {
			if err := yaml.Unmarshal([]byte(literal), &value); err != nil {
				return nil, fmt.Errorf("invalid value in --config-set %q: %w", a, err)
			}
		}
		out[key] = value
	}
	return out, nil
}
