package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/adapter/audio/mock"
	"github.com/hoangtrungvu/musicstream/internal/domain"
)

var (
	playShuffle bool
	playRepeat  string
	playCount   int
)

var playCmd = &cobra.Command{
	Use:   "play [trackID...]",
	Short: "Queue tracks and simulate playback",
	Long: `Queues the given tracks (the whole catalog when none are given) and walks
the queue on the simulated audio output, printing each track as it starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}
		defer application.Shutdown()

		repeat := domain.ParseRepeatMode(playRepeat)

		var tracks []domain.Track
		if len(args) == 0 {
			tracks = application.Catalog().All()
		} else {
			for _, id := range args {
				track, err := application.Catalog().FindByID(id)
				if err != nil {
					return fmt.Errorf("track %q: %w", id, err)
				}
				tracks = append(tracks, track)
			}
		}
		if len(tracks) == 0 {
			cmd.Println("nothing to play")
			return nil
		}

		player := application.Player
		player.SetRepeatMode(repeat)
		for _, track := range tracks[1:] {
			player.Enqueue(track)
		}
		player.PlayTrack(tracks[0])
		if playShuffle {
			player.ToggleShuffle()
		}

		output, ok := application.Output().(*mock.Output)
		if !ok {
			return fmt.Errorf("playback simulation requires the mock audio output")
		}

		steps := playCount
		if steps <= 0 {
			steps = len(tracks)
		}
		for i := 0; i < steps; i++ {
			state := player.State()
			if state.CurrentTrack == nil || !state.IsPlaying {
				break
			}
			cmd.Printf("playing %s - %s [%s]\n", state.CurrentTrack.Artist, state.CurrentTrack.Title, state.CurrentTrack.DurationLabel)
			output.FinishTrack()
		}

		state := player.State()
		cmd.Printf("played %d tracks, repeat %s, shuffle %v\n", min(steps, len(tracks)), state.RepeatMode, state.IsShuffled)
		return nil
	},
}

func init() {
	playCmd.Flags().BoolVar(&playShuffle, "shuffle", false, "shuffle the queue before playing")
	playCmd.Flags().StringVar(&playRepeat, "repeat", "none", "repeat mode: none, one or all")
	playCmd.Flags().IntVar(&playCount, "steps", 0, "number of tracks to play before stopping (0 = queue length)")
	rootCmd.AddCommand(playCmd)
}
