package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/adventures/internal/imagex"
	"github.com/dmitrijs2005/adventures/internal/tracker"
)

var (
	visitDate      string
	visitMemories  string
	visitPhotos    []string
	visitThumbnail int
)

var visitCmd = &cobra.Command{
	Use:   "visit <category> <name>",
	Short: "Record or edit a visit",
	Long: `Record a visit to an item, or edit an existing one. Photo files are
read from disk and uploaded; when the backend is unreachable they are kept
inline in the local snapshot.

Examples:
  adventurectl visit countries Japan --date 2025-04-12
  adventurectl visit wa-parks "Deception Pass" --date 2025-07-03 \
    --memories "Low tide at the bridge" --photo bridge.jpg --photo beach.jpg`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		photos := make([]string, 0, len(visitPhotos))
		for _, path := range visitPhotos {
			payload, err := encodePhoto(path)
			if err != nil {
				return err
			}
			photos = append(photos, payload)
		}

		engine := loadEngine(ctx)
		item, err := engine.SaveVisit(ctx, args[0], args[1], tracker.Visit{
			DateVisited: visitDate,
			Memories:    visitMemories,
			Photos:      photos,
			Thumbnail:   visitThumbnail,
		})
		if err != nil {
			return err
		}

		fmt.Printf("recorded visit to %s", item.Name)
		if item.DateVisited != "" {
			fmt.Printf(" on %s", item.DateVisited)
		}
		fmt.Println()
		return nil
	},
}

// encodePhoto reads an image file into the inline wire format, deriving the
// content type from the file extension.
func encodePhoto(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return imagex.EncodeInline(contentType, data), nil
}

func init() {
	rootCmd.AddCommand(visitCmd)
	visitCmd.Flags().StringVar(&visitDate, "date", "", "date of the visit, e.g. 2025-04-12")
	visitCmd.Flags().StringVar(&visitMemories, "memories", "", "notes about the visit")
	visitCmd.Flags().StringArrayVar(&visitPhotos, "photo", nil, "photo file to attach (repeatable)")
	visitCmd.Flags().IntVar(&visitThumbnail, "thumbnail", 0, "index of the photo to use as thumbnail")
}
