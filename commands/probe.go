package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/OpticalFlyer/anchorgui/ui"
)

var ErrBadSample = errors.New("bad pointer sample")

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     "replay pointer samples against the layout",
		ArgsUsage: "move:X,Y | press | release ...",
		Flags:     sizeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			samples, err := ParseSamples(cmd.Args().Slice())
			if err != nil {
				return err
			}

			gui, closeLog, err := buildGui(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			out := writer(cmd)
			asJSON := cmd.Bool("json")
			for _, ev := range samples {
				res := gui.MouseEvent(ev)
				if err := printResult(out, ev, res, asJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// ParseSamples reads pointer samples written as move:X,Y, press or release.
// Coordinates are in gui space.
func ParseSamples(args []string) ([]ui.PointerEvent, error) {
	samples := make([]ui.PointerEvent, 0, len(args))
	for _, arg := range args {
		ev, err := parseSample(arg)
		if err != nil {
			return nil, err
		}
		samples = append(samples, ev)
	}
	return samples, nil
}

func parseSample(arg string) (ui.PointerEvent, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	switch s {
	case "press":
		return ui.Pressed(), nil
	case "release":
		return ui.Released(), nil
	}

	coords, ok := strings.CutPrefix(s, "move:")
	if !ok {
		return ui.PointerEvent{}, fmt.Errorf("%w: %q", ErrBadSample, arg)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return ui.PointerEvent{}, fmt.Errorf("%w: %q: want move:X,Y", ErrBadSample, arg)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return ui.PointerEvent{}, fmt.Errorf("%w: %q: %v", ErrBadSample, arg, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return ui.PointerEvent{}, fmt.Errorf("%w: %q: %v", ErrBadSample, arg, err)
	}
	return ui.Moved(uint32(x), uint32(y)), nil
}

type resultLine struct {
	Sample   string      `json:"sample"`
	Consumed bool        `json:"consumed"`
	Pressed  *string     `json:"pressed"`
	Released *string     `json:"released"`
	Events   []eventLine `json:"events"`
}

type eventLine struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

func sampleString(ev ui.PointerEvent) string {
	switch ev.Kind {
	case ui.PointerPressed:
		return "press"
	case ui.PointerReleased:
		return "release"
	default:
		return fmt.Sprintf("move:%d,%d", ev.X, ev.Y)
	}
}

func printResult(w io.Writer, ev ui.PointerEvent, res ui.MouseEventResult[string, string, string], asJSON bool) error {
	line := resultLine{
		Sample:   sampleString(ev),
		Consumed: res.Consumed,
		Pressed:  res.PressedEvent,
		Released: res.ReleasedEvent,
		Events:   []eventLine{},
	}
	for _, e := range res.Events {
		if e != nil {
			line.Events = append(line.Events, eventLine{ID: e.ElementID, State: e.State.String()})
		}
	}

	if asJSON {
		return json.NewEncoder(w).Encode(line)
	}

	events := make([]string, 0, len(line.Events))
	for _, e := range line.Events {
		events = append(events, e.ID+":"+e.State)
	}
	_, err := fmt.Fprintf(w, "%-16s consumed=%t pressed=%s released=%s events=[%s]\n",
		line.Sample, line.Consumed, orDash(line.Pressed), orDash(line.Released), strings.Join(events, " "))
	return err
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
