// Command ytimport bulk-imports YouTube links into the gallery database.
//
// It reads a file with one YouTube URL per line, resolves each video ID,
// best-effort fetches a display title from the public oEmbed endpoint, and
// inserts the rows. Invalid lines and failed inserts are logged and skipped;
// the run never aborts part-way.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohitkumar/harvin/internal/models"
	"github.com/mohitkumar/harvin/internal/storage/sqlite"
	"github.com/mohitkumar/harvin/internal/youtube"
	"github.com/mohitkumar/harvin/pkg/logging"
)

var (
	dbPath string
	delay  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "ytimport <links-file>",
	Short: "Bulk-import YouTube links into the gallery",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "./data/harvin.db", "path to the SQLite database")
	rootCmd.Flags().DurationVar(&delay, "delay", 120*time.Millisecond, "pause between oEmbed requests")
}

func runImport(cmd *cobra.Command, args []string) error {
	logging.Setup()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read links file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	slog.Info("Links file loaded", "lines", len(lines))

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	yt := youtube.NewClient()
	ctx := cmd.Context()

	// Timestamps are assigned top-to-bottom so the first line in the file
	// gets the oldest created_at and lists last under the gallery's
	// newest-first ordering.
	base := time.Now().Unix() - int64(len(lines))

	inserted := 0
	for i, url := range lines {
		videoID, err := youtube.ParseVideoID(url)
		if err != nil {
			slog.Warn("Skipping invalid URL", "line", i+1, "url", url)
			continue
		}

		title, err := yt.FetchTitle(ctx, videoID)
		if err != nil {
			slog.Warn("Title lookup failed", "line", i+1, "video_id", videoID, "error", err)
			title = ""
		}

		link := &models.VideoLink{
			VideoID:   videoID,
			Title:     title,
			CreatedAt: base + int64(i),
		}
		if err := store.CreateVideoLink(ctx, link); err != nil {
			slog.Error("Insert failed", "line", i+1, "video_id", videoID, "error", err)
		} else {
			inserted++
			slog.Info("Inserted", "line", i+1, "of", len(lines), "video_id", videoID, "title", title)
		}

		// be polite to the oEmbed endpoint
		time.Sleep(delay)
	}

	slog.Info("Done", "inserted", inserted, "skipped", len(lines)-inserted)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
