package main

import (
	"os"
	"strings"

	"github.com/achilleasa/lumirig/cmd"
	"github.com/achilleasa/lumirig/rig"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumirig"
	app.Usage = "plan cube-map camera rigs for light-field capture"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "plan",
			Usage: "generate camera placements and write the rig manifest",
			Description: `
Sample camera positions inside the headbox with a Hammersley point set,
derive the six cube-face cameras per position and write a JSON manifest
describing every camera's intrinsics, extrinsics and output image paths.

Parameters may come from flags, from a YAML rig description (--config),
or both; explicit flags override file values.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML rig description file",
				},
				cli.StringFlag{
					Name:  "headbox-min",
					Value: "-0.5,-0.5,-0.5",
					Usage: "lower headbox corner as x,y,z",
				},
				cli.StringFlag{
					Name:  "headbox-max",
					Value: "0.5,0.5,0.5",
					Usage: "upper headbox corner as x,y,z",
				},
				cli.IntFlag{
					Name:  "view-groups, n",
					Value: 16,
					Usage: "number of camera positions (prefer powers of two)",
				},
				cli.IntFlag{
					Name:  "image-size",
					Value: 1024,
					Usage: "output image resolution in pixels (square)",
				},
				cli.Float64Flag{
					Name:  "near",
					Value: 0.1,
					Usage: "eye-space Z of the near clipping plane",
				},
				cli.Float64Flag{
					Name:  "far",
					Value: 100.0,
					Usage: "eye-space Z of the far clipping plane",
				},
				cli.StringFlag{
					Name:  "depth-type",
					Value: rig.DepthEyeZ,
					Usage: "depth encoding: " + strings.Join(rig.DepthTypes(), ", "),
				},
				cli.StringFlag{
					Name:  "depth-channel",
					Value: "A",
					Usage: "name of the depth channel in the output files",
				},
				cli.StringFlag{
					Name:  "color-pattern",
					Value: "%s_color.%04d.exr",
					Usage: "color image path pattern (face name, view group index)",
				},
				cli.StringFlag{
					Name:  "depth-pattern",
					Value: "%s_depth.%04d.exr",
					Usage: "depth image path pattern (face name, view group index)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "manifest.json",
					Usage: "output manifest file",
				},
				cli.StringFlag{
					Name:  "maya-script",
					Usage: "also emit a Maya python script that builds the rig",
				},
			},
			Action: cmd.PlanRig,
		},
		{
			Name:      "info",
			Usage:     "summarize an existing rig manifest",
			ArgsUsage: "manifest.json",
			Action:    cmd.ShowManifestInfo,
		},
	}

	app.Run(os.Args)
}
