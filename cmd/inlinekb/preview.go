package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lojasmm/inlinekb/form"
	"github.com/lojasmm/inlinekb/internal/gallery"
	"github.com/lojasmm/inlinekb/preview"
	"github.com/lojasmm/inlinekb/widget"
)

func previewCmd() *cobra.Command {
	var (
		stylesFile string
		showTokens bool
	)
	names := make([]string, 0, len(gallery.Kinds()))
	for _, k := range gallery.Kinds() {
		names = append(names, k.Name)
	}

	cmd := &cobra.Command{
		Use:       "preview [" + strings.Join(names, "|") + "]",
		Short:     "Draw gallery keyboards in the terminal",
		Example:   "  inlinekb preview\n  inlinekb preview calendar --tokens\n  inlinekb preview complex --styles styles.toml",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := widget.DefaultStyles()
			if stylesFile != "" {
				var err error
				if styles, err = widget.LoadStyles(stylesFile); err != nil {
					return err
				}
			}

			kinds := gallery.Kinds()
			if len(args) == 1 {
				k, _ := gallery.Lookup(args[0])
				kinds = []gallery.Kind{k}
			}

			out := cmd.OutOrStdout()
			for i, k := range kinds {
				if i > 0 {
					fmt.Fprintln(out)
				}
				kb := form.Keyboard(k.New(), styles)
				fmt.Fprintln(out, preview.Titled(k.Title, kb))
				if showTokens {
					fmt.Fprint(out, preview.Tokens(kb))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&stylesFile, "styles", "", "YAML or TOML style overrides")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "list the callback token of every cell")
	return cmd
}
