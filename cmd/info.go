package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/lumirig/rig"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ShowManifestInfo summarizes an existing manifest file.
func ShowManifestInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing manifest file argument")
	}

	manifest, err := rig.ReadManifest(ctx.Args().First())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"View group", "Views", "Eye offset", "Depth type", "First color path"})
	for idx, group := range manifest.ViewGroups {
		row := []string{fmt.Sprintf("%d", idx), fmt.Sprintf("%d", len(group.Views)), "-", "-", "-"}
		if len(group.Views) > 0 {
			view := group.Views[0]
			offset := view.ProjectiveCamera.WorldFromEyeMatrix.Translation()
			row[2] = fmt.Sprintf("(%.4f, %.4f, %.4f)", offset[0], offset[1], offset[2])
			row[3] = view.ProjectiveCamera.DepthType
			row[4] = view.DepthImageFile.Color.Path
		}
		table.Append(row)
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d groups", len(manifest.ViewGroups))})
	table.Render()

	logger.Noticef("manifest summary\n%s", buf.String())
	return nil
}
