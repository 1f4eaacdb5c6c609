package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/wallpanel/internal/platform"
	"github.com/ytget/wallpanel/internal/qr"
)

var successColor = color.New(color.FgGreen, color.Bold)

// openFile is replaced in tests.
var openFile = platform.OpenFileWithDefaultApp

func newQRCmd() *cobra.Command {
	var (
		pf   paramFlags
		out  string
		size int
		open bool
	)
	c := &cobra.Command{
		Use:   "qr",
		Short: "Write a QR code PNG of the wallpaper URL",
		Long: `Encode the absolute wallpaper URL as a QR code so a phone can open it.

Example:
  wallpanel qr --device iphone-15-pro-max --out qr/wallpaper.png --size 512 --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			b, params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			u := b.Absolute(params)
			if size <= 0 && cfg != nil {
				size = cfg.QR.Size
			}
			if size <= 0 {
				size = qr.DefaultSizePx
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}
			if err := qr.WriteFile(u, size, out); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			fmt.Fprintln(cmd.OutOrStdout(), u)
			if open {
				if err := openFile(out); err != nil {
					return fmt.Errorf("opening %s: %w", out, err)
				}
			}
			return nil
		},
	}
	addParamFlags(c, &pf)
	c.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	c.Flags().BoolVar(&open, "open", false, "open the written PNG in the default image viewer")
	c.Flags().IntVar(&size, "size", 0, "image size in pixels (defaults to qr.size from config)")
	return c
}

func init() {
	rootCmd.AddCommand(newQRCmd())
}
