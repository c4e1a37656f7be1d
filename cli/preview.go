package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/compozy/fixturegen/internal/catalog"
	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/config"
	"github.com/compozy/fixturegen/pkg/fixture"
	"github.com/compozy/fixturegen/pkg/logger"
)

type previewFlags struct {
	items     int
	count     int
	sets      []string
	overrides string
	format    string
}

func PreviewCmd() *cobra.Command {
	flags := &previewFlags{}
	cmd := &cobra.Command{
		Use:   "preview <type>",
		Short: "Generate and print fixtures of an example type",
		Example: `  fixturegen preview person --items 2
  fixturegen preview person --set Name=Ann --set Pets=null --format yaml
  fixturegen preview library --count 3 --overrides overrides.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, afero.NewOsFs(), args[0], flags)
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.items, "items", 0, "Items per generated collection (defaults to generation.item_count)")
	f.IntVar(&flags.count, "count", 1, "Number of fixtures to generate")
	f.StringArrayVar(&flags.sets, "set", nil, "Override a field as path=value; the value is read as YAML (repeatable)")
	f.StringVar(&flags.overrides, "overrides", "", "JSON file mapping field paths to values")
	f.StringVarP(&flags.format, "format", "o", OutputFormatJSON, "Output format (json, yaml)")
	return cmd
}

func runPreview(cmd *cobra.Command, fs afero.Fs, name string, flags *previewFlags) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)
	entry, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown type %q, run 'fixturegen types' to list them", name)
	}
	if flags.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", flags.count)
	}
	if flags.format != OutputFormatJSON && flags.format != OutputFormatYAML {
		return fmt.Errorf("unsupported output format: %s", flags.format)
	}
	overrides, err := collectOverrides(fs, flags.overrides, flags.sets)
	if err != nil {
		return err
	}

	opts := append(catalog.Options(), fixture.WithConfig(config.FromContext(ctx)), fixture.WithLogger(log))
	engine, err := fixture.New(opts...)
	if err != nil {
		return err
	}
	genOpts := []fixture.GenerateOption{fixture.WithOverrides(overrides)}
	if cmd.Flags().Changed("items") {
		genOpts = append(genOpts, fixture.WithItemCount(flags.items))
	}

	log.Debug("generating preview", "type", entry.Name, "count", flags.count, "overrides", len(overrides))
	values, err := engine.GenerateMany(entry.Type, flags.count, genOpts...)
	if err != nil {
		return err
	}
	if len(values) == 1 {
		return writeData(cmd.OutOrStdout(), flags.format, values[0].Interface())
	}
	data := make([]any, len(values))
	for i, v := range values {
		data[i] = v.Interface()
	}
	return writeData(cmd.OutOrStdout(), flags.format, data)
}

// collectOverrides merges the overrides file with the --set assignments; the
// assignments win.
func collectOverrides(fs afero.Fs, file string, sets []string) (attrpath.Overrides, error) {
	overrides := attrpath.Overrides{}
	if file != "" {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read overrides file: %w", err)
		}
		overrides, err = attrpath.FromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("invalid overrides file %s: %w", file, err)
		}
	}
	for _, set := range sets {
		path, value, err := parseAssignment(set)
		if err != nil {
			return nil, err
		}
		overrides = overrides.Set(path, value)
	}
	return overrides, nil
}

// parseAssignment splits path=value and reads value as YAML, so "null" is an
// explicit nil, "42" an integer and "[a, b]" a list.
func parseAssignment(s string) (attrpath.Path, any, error) {
	raw, literal, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid --set %q, expected path=value", s)
	}
	path, err := attrpath.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", nil, fmt.Errorf("invalid --set %q: %w", s, err)
	}
	if path.IsRoot() {
		return "", nil, fmt.Errorf("invalid --set %q, path is empty", s)
	}
	if literal == "" {
		return path, "", nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(literal), &value); err != nil {
		return "", nil, fmt.Errorf("invalid value in --set %q: %w", s, err)
	}
	return path, value, nil
}
