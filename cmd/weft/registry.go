package main

import (
	"github.com/spf13/cobra"

	"github.com/weftlang/weft/cmd/weft/internal"
	"github.com/weftlang/weft/internal/registry"
)

var registryDirFlag string

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the template registry",
	Long: `Inspect the YAML template registry. The registry directory comes
from the templates.dir config key or the --dir flag.`,
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	RunE:  runRegistryList,
}

var registryShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a template by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegistryShow,
}

func init() {
	registryCmd.PersistentFlags().StringVar(&registryDirFlag, "dir", "", "Template directory (overrides config)")
	registryCmd.AddCommand(registryListCmd)
	registryCmd.AddCommand(registryShowCmd)
}

// registryDir resolves the template directory from the --dir flag or the
// loaded configuration.
func registryDir() string {
	if registryDirFlag != "" {
		return registryDirFlag
	}
	if cfg != nil {
		return cfg.Templates.Dir
	}
	return ""
}

func loadRegistry() (registry.TemplateRegistry, error) {
	dir := registryDir()
	if dir == "" {
		return nil, internal.NewCLIError(internal.ExitConfigError, "no template directory configured (set templates.dir or --dir)")
	}
	reg := registry.NewTemplateRegistry()
	if err := reg.RegisterFromDirectory(dir); err != nil {
		return nil, err
	}
	return reg, nil
}

func runRegistryList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	templates := reg.List()
	printer := internal.NewPrinter(internal.OutputFormat(outputFormat), cmd.OutOrStdout())

	if printer.JSONOutput() {
		return printer.Encode(templates)
	}

	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{t.ID, t.Description})
	}
	return printer.Table([]string{"id", "description"}, rows)
}

func runRegistryShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	tmpl, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	printer := internal.NewPrinter(internal.OutputFormat(outputFormat), cmd.OutOrStdout())
	if printer.JSONOutput() {
		return printer.Encode(tmpl)
	}

	cmd.Println("ID:", tmpl.ID)
	if tmpl.Description != "" {
		cmd.Println("Description:", tmpl.Description)
	}
	cmd.Println("Template:")
	cmd.Println(tmpl.Content)
	return nil
}
