package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/OpticalFlyer/anchorgui/config"
	"github.com/OpticalFlyer/anchorgui/ui"
)

func sizeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint32Flag{Name: "width", Usage: "window width; the layout's own when zero"},
		&cli.Uint32Flag{Name: "height", Usage: "window height; the layout's own when zero"},
		&cli.BoolFlag{Name: "json", Usage: "print JSON lines"},
	}
}

func positionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "positions",
		Usage: "print the content position of every element after a resize",
		Flags: sizeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gui, closeLog, err := buildGui(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			width, height := gui.Size()
			changes := gui.Resize(width, height)
			return printPositions(writer(cmd), changes, cmd.Bool("json"))
		},
	}
}

// buildGui opens the session and builds its gui at the size given by the
// --width and --height flags.
func buildGui(cmd *cli.Command) (*config.Gui, func() error, error) {
	s, closeLog, err := openSession(cmd)
	if err != nil {
		return nil, nil, err
	}
	if w := cmd.Uint32("width"); w != 0 {
		s.Doc.Window.Width = w
	}
	if h := cmd.Uint32("height"); h != 0 {
		s.Doc.Window.Height = h
	}

	gui, err := config.Build(s.Doc, ui.WithLogger(s.Logger))
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}
	return gui, closeLog, nil
}

type positionLine struct {
	ID string `json:"id"`
	X  uint32 `json:"x"`
	Y  uint32 `json:"y"`
}

func printPositions(w io.Writer, changes []ui.PositionChange[string], asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, c := range changes {
			if err := enc.Encode(positionLine{ID: c.ElementID, X: c.X, Y: c.Y}); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tX\tY")
	for _, c := range changes {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.ElementID, c.X, c.Y)
	}
	return tw.Flush()
}
