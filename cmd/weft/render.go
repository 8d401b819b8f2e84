package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftlang/weft/cmd/weft/internal"
	"github.com/weftlang/weft/internal/interp"
	"github.com/weftlang/weft/internal/observability"
	"github.com/weftlang/weft/internal/registry"
)

var (
	renderContextFile string
	renderSetValues   []string
	renderTemplateID  string
)

var renderCmd = &cobra.Command{
	Use:   "render [TEMPLATE]",
	Short: "Render an interpolation template",
	Long: `Render a template against a data context and print the result.

The template is given as a positional argument, as @path to read it
from a file, or via --id to load it from the template registry. The
context is a YAML file (--context) and/or --set key=value overrides,
where keys are dotted paths rooted at data, url, or user.`,
	Example: `  weft render 'Hello {{ data.name }}!' --set data.name=world
  weft render @greeting.tmpl --context ctx.yaml
  weft render --id welcome-email --context ctx.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderContextFile, "context", "c", "", "YAML file providing the data context")
	renderCmd.Flags().StringArrayVar(&renderSetValues, "set", nil, "Set a context value (key=value, repeatable)")
	renderCmd.Flags().StringVar(&renderTemplateID, "id", "", "Render a template from the registry by ID")
}

func runRender(cmd *cobra.Command, args []string) error {
	tmpl, err := resolveTemplate(cmd, args)
	if err != nil {
		return err
	}

	ctx, err := buildContext()
	if err != nil {
		return err
	}

	engine := interp.NewEngine(observability.NewSlogSink(logger))
	result, err := engine.InterpolateErr(tmpl, ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// resolveTemplate picks the template source: registry ID, @file, or the
// positional argument itself.
func resolveTemplate(cmd *cobra.Command, args []string) (string, error) {
	if renderTemplateID != "" {
		if len(args) > 0 {
			return "", internal.NewCLIError(internal.ExitError, "cannot combine --id with a positional template")
		}
		return loadRegistryTemplate(renderTemplateID)
	}

	if len(args) == 0 {
		return "", internal.NewCLIError(internal.ExitError, "a template argument or --id is required")
	}

	arg := args[0]
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", internal.WrapError(internal.ExitError, "failed to read template file", err)
		}
		return string(data), nil
	}
	return arg, nil
}

// loadRegistryTemplate loads the configured registry directory and
// returns the body of the template with the given ID.
func loadRegistryTemplate(id string) (string, error) {
	dir := registryDir()
	if dir == "" {
		return "", internal.NewCLIError(internal.ExitConfigError, "no template directory configured (set templates.dir)")
	}

	reg := registry.NewTemplateRegistry()
	if err := reg.RegisterFromDirectory(dir); err != nil {
		return "", err
	}
	tmpl, err := reg.Get(id)
	if err != nil {
		return "", err
	}
	return tmpl.Content, nil
}

// buildContext assembles the render context from the --context file and
// --set overrides, applied in that order.
func buildContext() (*interp.Context, error) {
	ctx := interp.NewContext()

	if renderContextFile != "" {
		data, err := os.ReadFile(renderContextFile)
		if err != nil {
			return nil, internal.WrapError(internal.ExitError, "failed to read context file", err)
		}
		ctx, err = interp.ContextFromYAML(data)
		if err != nil {
			return nil, err
		}
	}

	for _, kv := range renderSetValues {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, internal.NewCLIError(internal.ExitError, fmt.Sprintf("invalid --set value %q, expected key=value", kv))
		}
		ctx.Set(key, value)
	}

	return ctx, nil
}
