package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/app"
	"github.com/hoangtrungvu/musicstream/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the restored application state",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		user, err := application.Auth.CurrentUser()
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			cmd.Println("session:  not logged in")
		case err != nil:
			return err
		default:
			cmd.Printf("session:  %s (%s)\n", user.DisplayName(), user.Email)
		}

		settings := application.Settings.Settings()
		cmd.Printf("theme:    %s\n", settings.Theme)

		state := application.Player.State()
		cmd.Printf("volume:   %.0f%%\n", state.Volume*100)
		cmd.Printf("repeat:   %s\n", state.RepeatMode)
		cmd.Printf("catalog:  %d tracks\n", application.Catalog().Len())
		cmd.Printf("liked:    %d tracks\n", len(application.Library.Liked()))
		cmd.Printf("history:  %d tracks\n", len(application.Library.RecentlyPlayed()))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(app.GetVersionInfo().FullString())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, versionCmd)
}
