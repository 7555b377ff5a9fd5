package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbhint/internal/cli/styles"
	"github.com/bnema/dumbhint/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, validate and create the dumbhint configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		data, err := config.Marshal(app.Config)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		path := app.Manager.ConfigFileUsed()
		if path == "" {
			path = configPath
		}
		if app.LoadErr != nil {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderInvalid(path, app.LoadErr))
			return fmt.Errorf("invalid configuration")
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderValid(path))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		renderer := styles.NewConfigRenderer(app.Theme)

		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigFile(); err != nil {
				return err
			}
		}
		if err := config.WriteDefault(path, configForce); err != nil {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("default config", path))

		schemaPath, err := config.WriteSchema(filepath.Dir(path))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("schema", schemaPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configValidateCmd, configSchemaCmd, configInitCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}
