package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var urlColor = color.New(color.FgBlue, color.Bold)

func newURLCmd() *cobra.Command {
	var (
		pf       paramFlags
		relative bool
	)
	c := &cobra.Command{
		Use:   "url",
		Short: "Print the wallpaper URL for the given parameters",
		Long: `Print the absolute wallpaper URL, the same link the panel copies.

Example:
  wallpanel url --device iphone-se --lang ru --timezone 3 --weekends red
  wallpanel url --relative`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			u := b.Absolute(params)
			if relative {
				u = b.Relative(params)
			}
			urlColor.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	addParamFlags(c, &pf)
	c.Flags().BoolVar(&relative, "relative", false, "print only the path and query, as the preview requests it")
	return c
}

func init() {
	rootCmd.AddCommand(newURLCmd())
}
