package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			if err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := config.CreateSample(path); err != nil {
			return err
		}
		cmd.Println("wrote sample config to", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if exists {
			cmd.Println(path)
		} else {
			cmd.Println(path, "(not found, defaults in effect)")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
