package cli

import (
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage liked tracks and the play history",
}

var libraryLikedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List liked tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		liked := application.Library.Liked()
		if len(liked) == 0 {
			cmd.Println("no liked tracks")
			return nil
		}
		printTracks(cmd, liked)
		return nil
	},
}

var libraryLikeCmd = &cobra.Command{
	Use:   "like <trackID>",
	Short: "Like a catalog track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		track, err := application.Catalog().FindByID(args[0])
		if err != nil {
			return err
		}
		if err := application.Library.Like(track); err != nil {
			return err
		}
		cmd.Printf("liked %s - %s\n", track.Artist, track.Title)
		return nil
	},
}

var libraryUnlikeCmd = &cobra.Command{
	Use:   "unlike <trackID>",
	Short: "Remove a track from the liked set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		if err := application.Library.Unlike(args[0]); err != nil {
			return err
		}
		cmd.Println("unliked", args[0])
		return nil
	},
}

var libraryHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played tracks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		recent := application.Library.RecentlyPlayed()
		if len(recent) == 0 {
			cmd.Println("no play history")
			return nil
		}
		printTracks(cmd, recent)
		return nil
	},
}

func init() {
	libraryCmd.AddCommand(libraryLikedCmd, libraryLikeCmd, libraryUnlikeCmd, libraryHistoryCmd)
	rootCmd.AddCommand(libraryCmd)
}
