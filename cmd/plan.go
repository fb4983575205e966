package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/achilleasa/lumirig/maya"
	"github.com/achilleasa/lumirig/rig"
	"github.com/achilleasa/lumirig/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// PlanRig generates the camera placements, writes the JSON manifest and
// optionally emits a Maya rig script.
func PlanRig(ctx *cli.Context) error {
	setupLogging(ctx)

	params, err := rigParams(ctx)
	if err != nil {
		return err
	}

	manifest, positions, err := rig.Plan(params)
	if err != nil {
		return err
	}

	if params.NumViewGroups&(params.NumViewGroups-1) != 0 {
		logger.Warningf("%d view groups is not a power of two; the Hammersley distribution is most even for powers of two", params.NumViewGroups)
	}

	out := ctx.String("out")
	if err = manifest.WriteFile(out); err != nil {
		return err
	}
	logger.Noticef("wrote manifest with %d view groups to %s", len(manifest.ViewGroups), out)

	if scriptFile := ctx.String("maya-script"); scriptFile != "" {
		f, err := os.Create(scriptFile)
		if err != nil {
			return err
		}
		err = maya.WriteRig(f, positions, params.NearClip, params.FarClip)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		logger.Noticef("wrote maya rig script to %s", scriptFile)
	}

	displayPlacements(positions, params.Headbox().Center())
	return nil
}

// Assemble rig params from the optional config file plus flag overrides.
func rigParams(ctx *cli.Context) (rig.Params, error) {
	var params rig.Params
	var err error

	fromConfig := ctx.String("config") != ""
	if fromConfig {
		if params, err = rig.LoadParams(ctx.String("config")); err != nil {
			return rig.Params{}, err
		}
	}

	// A flag applies when no config file is present or when it was set
	// explicitly on the command line.
	applies := func(name string) bool {
		return !fromConfig || ctx.IsSet(name)
	}

	if applies("headbox-min") {
		if params.HeadboxMin, err = parseVec3(ctx.String("headbox-min")); err != nil {
			return rig.Params{}, fmt.Errorf("headbox-min: %s", err)
		}
	}
	if applies("headbox-max") {
		if params.HeadboxMax, err = parseVec3(ctx.String("headbox-max")); err != nil {
			return rig.Params{}, fmt.Errorf("headbox-max: %s", err)
		}
	}
	if applies("view-groups") {
		params.NumViewGroups = ctx.Int("view-groups")
	}
	if applies("image-size") {
		params.ImageSize = ctx.Int("image-size")
	}
	if applies("near") {
		params.NearClip = ctx.Float64("near")
	}
	if applies("far") {
		params.FarClip = ctx.Float64("far")
	}
	if applies("depth-type") {
		params.DepthType = ctx.String("depth-type")
	}
	if applies("depth-channel") {
		params.DepthChannelName = ctx.String("depth-channel")
	}
	if applies("color-pattern") {
		params.ColorPathPattern = ctx.String("color-pattern")
	}
	if applies("depth-pattern") {
		params.DepthPathPattern = ctx.String("depth-pattern")
	}

	return params, nil
}

// Parse a comma-separated 3 component vector, e.g. "-0.5,-0.5,-0.5".
func parseVec3(s string) (types.Vec3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return types.Vec3{}, fmt.Errorf("expected 3 comma-separated components; got %d", len(fields))
	}

	var v types.Vec3
	for i, field := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return types.Vec3{}, err
		}
		v[i] = val
	}
	return v, nil
}

// Display the generated camera placements.
func displayPlacements(positions []types.Vec3, center types.Vec3) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"View group", "X", "Y", "Z", "Dist to center"})
	for idx, pos := range positions {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%.4f", pos[0]),
			fmt.Sprintf("%.4f", pos[1]),
			fmt.Sprintf("%.4f", pos[2]),
			fmt.Sprintf("%.4f", pos.Dist(center)),
		})
	}
	table.Render()

	logger.Noticef("camera placements\n%s", buf.String())
}
