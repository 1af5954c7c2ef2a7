// Command rivescene drives the sample animation through the scene adapter
// and exports a frame as SVG or PNG.
package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/internal/sample"
	"github.com/gogpu/rive/raster"
	"github.com/gogpu/rive/recording"
	"github.com/gogpu/rive/scene"
	"github.com/gogpu/rive/scene/svg"

	_ "github.com/gogpu/rive/recording/backends/raster"
	svgbackend "github.com/gogpu/rive/recording/backends/svg"
)

type Root struct{}

type Export struct {
	Output    string  `short:"o" desc:"Output filename, - for stdout"`
	Format    string  `short:"f" default:"svg" desc:"Output format: svg or png"`
	Width     int     `desc:"Canvas width, zero picks one from the instance count"`
	Height    int     `desc:"Canvas height, zero picks one from the instance count"`
	Instances int     `short:"n" default:"1" desc:"Number of animation instances (1 to 3)"`
	Time      float64 `short:"t" desc:"Animation time in seconds"`
	Fit       string  `default:"Contain" desc:"Fit of a single instance: Fill, Contain, Cover, FitWidth, FitHeight, None or ScaleDown"`
	Minify    bool    `desc:"Minify SVG output"`
	Verbose   bool    `short:"v" desc:"Log debug output to stderr"`
}

type Info struct {
	Time    float64 `short:"t" desc:"Animation time in seconds"`
	Verbose bool    `short:"v" desc:"Log debug output to stderr"`
}

func main() {
	root := argp.NewCmd(&Root{}, "Render the sample animation through the rive scene adapter")
	root.AddCmd(&Export{}, "export", "Export a frame as SVG or PNG")
	root.AddCmd(&Info{}, "info", "Print the draw calls and the scene of a frame")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Root) Run() error {
	return argp.ShowUsage
}

func setVerbose(on bool) {
	if on {
		rive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

// recordFrame records one frame of a single instance aligned into the
// canvas.
func recordFrame(width, height int, fit rive.Fit, t float64) (*recording.Recording, error) {
	rec := recording.NewRecorder(width, height)
	a := sample.NewArtboard(rec)

	frame := rive.AABB{MaxX: float32(width), MaxY: float32(height)}
	rec.Save()
	rive.Align(rec, fit, rive.AlignCenter, frame, sample.Bounds())
	a.Draw(rec, t)
	rec.Restore()
	if err := rec.Err(); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}

func (o *Export) Run() error {
	setVerbose(o.Verbose)
	if !recording.IsRegistered(o.Format) {
		return fmt.Errorf("unknown format %q; available: %s", o.Format, strings.Join(recording.Backends(), ", "))
	}
	if o.Instances < 1 || len(sample.DefaultPlacements) < o.Instances {
		return fmt.Errorf("instances must be between 1 and %d", len(sample.DefaultPlacements))
	}
	fit, ok := rive.ParseFit(o.Fit)
	if !ok {
		return fmt.Errorf("unknown fit %q", o.Fit)
	}

	width, height := o.Width, o.Height
	if width <= 0 {
		width = 400
		if o.Instances > 1 {
			width = 1000
		}
	}
	if height <= 0 {
		height = 400
		if o.Instances > 1 {
			height = 1000
		}
	}

	if o.Output == "" || o.Output == "-" {
		return writeFrame(os.Stdout, *o, width, height, fit)
	}
	f, err := os.Create(o.Output)
	if err != nil {
		return err
	}
	if err := writeFrame(f, *o, width, height, fit); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFrame(w io.Writer, o Export, width, height int, fit rive.Fit) error {
	bw := bufio.NewWriter(w)
	var err error
	if o.Instances == 1 {
		err = exportSingle(bw, o.Format, width, height, fit, o.Time, o.Minify)
	} else {
		err = exportComposition(bw, o.Format, width, height, o.Instances, o.Time, o.Minify)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// exportSingle records the frame and plays it back to the backend
// registered for format.
func exportSingle(w io.Writer, format string, width, height int, fit rive.Fit, t float64, minify bool) error {
	r, err := recordFrame(width, height, fit, t)
	if err != nil {
		return err
	}
	b, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	if sb, ok := b.(*svgbackend.Backend); ok {
		sb.SetMinify(minify)
	}
	if err := r.Playback(b); err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write output", format)
	}
	_, err = wb.WriteTo(w)
	return err
}

// exportComposition draws several instances, each through its own renderer,
// into one canvas scene.
func exportComposition(w io.Writer, format string, width, height, n int, t float64, minify bool) error {
	c := sample.NewComposition(sample.DefaultPlacements[:n])
	defer c.Close()
	if err := c.Update(t); err != nil {
		return err
	}
	switch format {
	case "svg":
		return svg.Write(w, c.Scene(), svg.Options{
			Width:  float32(width),
			Height: float32(height),
			Minify: minify,
		})
	case "png":
		img := raster.Render(c.Scene(), raster.Options{Width: width, Height: height})
		return png.Encode(w, img)
	}
	return fmt.Errorf("unknown format %q", format)
}

func (o *Info) Run() error {
	setVerbose(o.Verbose)

	r, err := recordFrame(sample.Width, sample.Height, rive.FitContain, o.Time)
	if err != nil {
		return err
	}
	counts := map[recording.CommandType]int{}
	for _, cmd := range r.Commands() {
		counts[cmd.Type()]++
	}
	fmt.Printf("Commands: %d\n", len(r.Commands()))
	for _, typ := range []recording.CommandType{
		recording.CmdSave, recording.CmdRestore, recording.CmdTransform,
		recording.CmdClipPath, recording.CmdDrawPath,
	} {
		fmt.Printf("  %-10s %d\n", typ, counts[typ])
	}
	fmt.Printf("Snapshots: %d paths, %d paints\n", r.Resources().PathCount(), r.Resources().PaintCount())

	s := scene.NewScene()
	if err := r.PlayTo(rive.NewSceneFactory(), rive.NewSceneRenderer(s)); err != nil {
		return err
	}
	shapes, groups, clipped := 0, 0, 0
	s.Walk(func(p scene.Paint, _ scene.Matrix) bool {
		switch p.(type) {
		case *scene.Shape:
			shapes++
		case *scene.Group:
			groups++
		}
		if target, _ := p.Composite(); target != nil {
			clipped++
		}
		return true
	})
	b := s.Bounds()
	fmt.Printf("Scene: %d paints, %d shapes, %d groups, %d clipped\n", s.Len(), shapes, groups, clipped)
	fmt.Printf("Bounds: (%g, %g) - (%g, %g)\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	fmt.Printf("Backends: %s\n", strings.Join(recording.Backends(), ", "))
	return nil
}
