package catalog

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/google/uuid"

	"github.com/hoangtrungvu/musicstream/internal/domain"
)

// audioExtensions are the file types the importer builds track records from.
// Only the embedded tags are read; the audio itself is never decoded.
var audioExtensions = []string{".mp3", ".m4a", ".mp4", ".flac", ".ogg"}

// ImportDir walks dir and builds a catalog from the audio files found.
// Files whose tags cannot be read still get a record with the filename as
// title. Returns the catalog of imported tracks.
func ImportDir(dir string, logger *slog.Logger) (*Catalog, error) {
	var tracks []domain.Track

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isAudioFile(path) {
			return nil
		}

		track, readErr := readTrack(path)
		if readErr != nil {
			logger.Warn("skipping unreadable file",
				slog.String("path", path),
				slog.Any("error", readErr))
			return nil
		}

		tracks = append(tracks, track)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("catalog import finished",
		slog.String("dir", dir),
		slog.Int("tracks", len(tracks)))

	return New(tracks), nil
}

// isAudioFile reports whether path has a supported audio extension.
func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range audioExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// readTrack builds a track record from a file's embedded tags.
func readTrack(path string) (domain.Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Track{}, err
	}
	defer file.Close()

	track := domain.Track{
		ID:       uuid.NewString(),
		Title:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		AudioRef: path,
	}

	// Tags are best-effort; a file without them is still playable.
	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return track, nil
	}

	if title := metadata.Title(); title != "" {
		track.Title = title
	}
	track.Artist = metadata.Artist()
	track.Album = metadata.Album()
	track.Genre = metadata.Genre()
	track.Year = metadata.Year()

	return track, nil
}
