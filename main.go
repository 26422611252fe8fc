// bmptool mirrors, scales, rotates and crops 24 bit uncompressed bitmaps
package main

import (
	"io"
	"log"
	"os"

	"github.com/anas-shakeel/bmptool/cmd"
	"github.com/anas-shakeel/bmptool/internal/config"
	"github.com/anas-shakeel/bmptool/internal/pipeline"
	"github.com/spf13/cobra"
)

// Transform commands take no flags, so their usage lists arguments only.
const transformUsage = `Usage:
  {{.UseLine}}

Pass --help as the first argument to show this message.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bmptool",
		Long:          `Geometric transforms for 24 bit uncompressed BMP files`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)

	// Transform commands take their parameter verbatim so that negative
	// angles and -h/-v axis tokens are not read as flags.
	transformCmd := func(op, use, short string) *cobra.Command {
		c := &cobra.Command{
			Use:                   use,
			Short:                 short,
			DisableFlagParsing:    true,
			DisableFlagsInUseLine: true,
			RunE: func(c *cobra.Command, args []string) error {
				if len(args) < 3 || args[0] == "--help" {
					return c.Usage()
				}
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				return cmd.Transform(cfg, op, args[0], args[1], args[2])
			},
		}
		c.SetUsageTemplate(transformUsage)
		return c
	}

	rootCmd.AddCommand(
		transformCmd(pipeline.OpScale, "scale <percent> <input.bmp> <output.bmp>", "Resize by an integer percentage (nearest-neighbor)"),
		transformCmd(pipeline.OpRotate, "rotate <degrees> <input.bmp> <output.bmp>", "Rotate around the center onto a white background"),
		transformCmd(pipeline.OpMirror, "mirror <h|v> <input.bmp> <output.bmp>", "Mirror horizontally or vertically"),
		transformCmd(pipeline.OpCrop, "crop <x,y,width,height> <input.bmp> <output.bmp>", "Cut out a rectangle"),
	)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run every job listed in a YAML file",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) < 1 {
				return c.Usage()
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return cmd.Batch(cfg, args[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info <input.bmp>",
		Short: "Print bitmap metadata",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) < 1 {
				return c.Usage()
			}
			return cmd.Info(stdout, args[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "preview <input.bmp>",
		Short: "Draw the bitmap in the terminal (small images only)",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) < 1 {
				return c.Usage()
			}
			return cmd.Preview(stdout, args[0])
		},
	})

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}
