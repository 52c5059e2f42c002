package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the track catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		printTracks(cmd, application.Catalog().All())
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tracks by title, artist or genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		matches := application.Catalog().Search(strings.Join(args, " "))
		if len(matches) == 0 {
			cmd.Println("no tracks found")
			return nil
		}
		printTracks(cmd, matches)
		return nil
	},
}

var catalogGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres present in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		for _, genre := range application.Catalog().Genres() {
			cmd.Println(genre)
		}
		return nil
	},
}

func printTracks(cmd *cobra.Command, tracks []domain.Track) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tGENRE\tDURATION")
	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Artist, t.Genre, t.DurationLabel)
	}
	w.Flush()
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogSearchCmd, catalogGenresCmd)
	rootCmd.AddCommand(catalogCmd)
}
