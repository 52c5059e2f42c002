package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change user settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		printSettings(cmd, application.Settings.Settings())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key>=<value> [<key>=<value>...]",
	Short: "Update settings fields",
	Long: `Updates one or more settings fields, leaving the rest unchanged.
Keys: theme, fontSize, defaultVolume, audioQuality, saveHistory,
dataSharing, emailNotifications.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := parseSettingsPatch(args)
		if err != nil {
			return err
		}

		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		updated, err := application.Settings.Update(patch)
		if err != nil {
			return err
		}
		printSettings(cmd, updated)
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		settings, err := application.Settings.Reset()
		if err != nil {
			return err
		}
		printSettings(cmd, settings)
		return nil
	},
}

func parseSettingsPatch(args []string) (domain.SettingsPatch, error) {
	var patch domain.SettingsPatch
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return patch, fmt.Errorf("expected <key>=<value>, got %q", arg)
		}
		switch key {
		case "theme":
			patch.Theme = &value
		case "fontSize":
			patch.FontSize = &value
		case "audioQuality":
			patch.AudioQuality = &value
		case "defaultVolume":
			volume, err := strconv.Atoi(value)
			if err != nil {
				return patch, fmt.Errorf("defaultVolume: %w", err)
			}
			patch.DefaultVolume = &volume
		case "saveHistory", "dataSharing", "emailNotifications":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return patch, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "saveHistory":
				patch.SaveHistory = &enabled
			case "dataSharing":
				patch.DataSharing = &enabled
			case "emailNotifications":
				patch.EmailNotifications = &enabled
			}
		default:
			return patch, fmt.Errorf("unknown settings key %q", key)
		}
	}
	return patch, nil
}

func printSettings(cmd *cobra.Command, s domain.Settings) {
	cmd.Printf("theme:              %s\n", s.Theme)
	cmd.Printf("fontSize:           %s\n", s.FontSize)
	cmd.Printf("defaultVolume:      %d\n", s.DefaultVolume)
	cmd.Printf("audioQuality:       %s\n", s.AudioQuality)
	cmd.Printf("saveHistory:        %v\n", s.SaveHistory)
	cmd.Printf("dataSharing:        %v\n", s.DataSharing)
	cmd.Printf("emailNotifications: %v\n", s.EmailNotifications)
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}
