package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var imageUploadName string

var imageCmd = &cobra.Command{
	Use:   "image [upload|delete]",
	Short: "Manage stored images directly",
}

var imageUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload one image and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		payload, err := encodePhoto(args[0])
		if err != nil {
			return err
		}

		name := imageUploadName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		url, err := client.Upload(ctx, payload, name)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

var imageDeleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Delete a stored image by its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := client.DeleteImage(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageUploadCmd)
	imageCmd.AddCommand(imageDeleteCmd)
	imageUploadCmd.Flags().StringVar(&imageUploadName, "name", "", "suggested object name (defaults to the file name)")
}
