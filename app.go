package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/anchorgui/commands"
	"github.com/OpticalFlyer/anchorgui/config"
	"github.com/OpticalFlyer/anchorgui/mesh"
	"github.com/OpticalFlyer/anchorgui/proj"
	"github.com/OpticalFlyer/anchorgui/ui"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	labelFace = text.NewGoXFace(basicfont.Face7x13)

	frameColor   = color.RGBA{R: 0x44, G: 0x4c, B: 0x5a, A: 0xff}
	contentColor = color.RGBA{R: 0x7a, G: 0x86, B: 0x99, A: 0xff}
	pressedColor = color.RGBA{R: 0xe0, G: 0x9f, B: 0x3e, A: 0xff}
	debugColor   = color.RGBA{R: 0xff, A: 0xff}
)

func init() {
	whiteImage.Fill(color.White)
}

// scene is everything built from one layout document.
type scene struct {
	gui    *config.Gui
	meshes *mesh.Set[string]
	leaves map[string]*ui.Rectangle[string, string, string]
	labels map[string]string
}

func newScene(doc *config.Document, logger *slog.Logger) (*scene, error) {
	gui, err := config.Build(doc, ui.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	meshes := mesh.NewSet[string]()
	if err := mesh.AddLeaves(meshes, gui); err != nil {
		return nil, fmt.Errorf("triangulate layout: %w", err)
	}

	leaves := make(map[string]*ui.Rectangle[string, string, string])
	for _, r := range gui.Leaves() {
		leaves[r.ID()] = r
	}
	return &scene{gui: gui, meshes: meshes, leaves: leaves, labels: doc.Labels()}, nil
}

// App implements ebiten.Game interface.
type App struct {
	ctx    context.Context
	logger *slog.Logger

	scene   *scene
	reloads chan *scene

	screenWidth, screenHeight int
	debugMode                 bool
	showFPS                   bool
	status                    string

	// Mouse state
	lastMouseX, lastMouseY int

	// Touch state; only the first finger down drives the pointer.
	touchID     ebiten.TouchID
	touchActive bool
	lastTouchX  int
	lastTouchY  int
}

func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	case sc := <-a.reloads:
		a.swap(sc)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debugMode = !a.debugMode
	}

	if x, y := ebiten.CursorPosition(); x != a.lastMouseX || y != a.lastMouseY {
		a.lastMouseX, a.lastMouseY = x, y
		a.feed(a.moved(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.feed(ui.Pressed())
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.feed(ui.Released())
	}

	a.handleTouchEvents()
	return nil
}

// moved converts a screen position into a pointer sample.
func (a *App) moved(x, y int) ui.PointerEvent {
	gx, gy, _ := proj.ScreenToGui(x, y, a.screenWidth, a.screenHeight)
	return ui.Moved(gx, gy)
}

func (a *App) feed(ev ui.PointerEvent) {
	res := a.scene.gui.MouseEvent(ev)
	if res.ReleasedEvent != nil {
		a.trigger(*res.ReleasedEvent)
	}
	if res.PressedEvent != nil {
		a.status = *res.PressedEvent
	}
}

func (a *App) trigger(action string) {
	a.logger.Info("button released", slog.String("action", action))
	switch action {
	case "fps":
		a.showFPS = !a.showFPS
	case "performance-graph":
		a.debugMode = !a.debugMode
	}
	a.status = action
}

// swap replaces the scene with one built from a reloaded layout. A gesture in
// progress on the old scene is dropped.
func (a *App) swap(sc *scene) {
	a.scene = sc
	w, h := proj.WindowSize(a.screenWidth, a.screenHeight)
	sc.meshes.Apply(sc.gui.Resize(w, h))
	a.logger.Info("layout reloaded", slog.Int("elements", sc.meshes.Len()))
}

func (a *App) Draw(screen *ebiten.Image) {
	height := float32(a.screenHeight)

	var vertices []ebiten.Vertex
	var indices []uint16
	appendMesh := func(m mesh.Mesh, clr color.RGBA) {
		base := uint16(len(vertices))
		r, g, b, al := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
		for i := 0; i+1 < len(m.Vertices); i += 2 {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(m.Vertices[i]),
				DstY:   height - float32(m.Vertices[i+1]),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: al,
			})
		}
		for _, idx := range m.Indices {
			indices = append(indices, base+uint16(idx))
		}
	}

	a.scene.meshes.Each(func(id string, content, frame mesh.Mesh) {
		appendMesh(frame, frameColor)
		if r := a.scene.leaves[id]; r != nil && r.IsPressed() {
			appendMesh(content, pressedColor)
		} else {
			appendMesh(content, contentColor)
		}
	})
	if len(indices) > 0 {
		screen.DrawTriangles(vertices, indices, whiteSubImage, nil)
	}

	for id, label := range a.scene.labels {
		r := a.scene.leaves[id]
		if r == nil {
			continue
		}
		cb := r.ContentBounds()
		x, y := proj.GuiToScreen(cb.X, cb.Y, cb.Height, a.screenHeight)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, label, labelFace, op)
	}

	if a.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 10, a.screenHeight-40)
	}

	if a.debugMode {
		for _, anchor := range a.scene.gui.Anchors() {
			b := anchor.Bounds()
			x, y := proj.GuiToScreen(b.X, b.Y, b.Height, a.screenHeight)
			vector.StrokeRect(screen, float32(x), float32(y), float32(b.Width), float32(b.Height), 1, debugColor, false)
		}

		px, py, pressed := a.scene.gui.Pointer()
		debugText := fmt.Sprintf("Pointer: %d,%d pressed=%t\nCapturing: %t\nLast: %s",
			px, py, pressed, a.scene.gui.Capturing(), a.status)
		ebitenutil.DebugPrint(screen, debugText)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.screenWidth || outsideHeight != a.screenHeight {
		a.screenWidth, a.screenHeight = outsideWidth, outsideHeight
		w, h := proj.WindowSize(outsideWidth, outsideHeight)
		a.scene.meshes.Apply(a.scene.gui.Resize(w, h))
	}
	return outsideWidth, outsideHeight
}

// runWindow opens the layout in a resizable window and reloads it when the
// layout file changes.
func runWindow(ctx context.Context, s commands.Session) error {
	sc, err := newScene(s.Doc, s.Logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := &App{
		ctx:          ctx,
		logger:       s.Logger,
		scene:        sc,
		reloads:      make(chan *scene, 1),
		screenWidth:  int(s.Doc.Window.Width),
		screenHeight: int(s.Doc.Window.Height),
	}
	sc.meshes.Apply(sc.gui.Resize(s.Doc.Window.Width, s.Doc.Window.Height))

	if s.Path != "" {
		go func() {
			err := config.Watch(ctx, s.Path, func(doc *config.Document, err error) {
				if err != nil {
					s.Logger.Warn("layout reload failed", slog.Any("err", err))
					return
				}
				next, err := newScene(doc, s.Logger)
				if err != nil {
					s.Logger.Warn("layout reload failed", slog.Any("err", err))
					return
				}
				// Keep only the newest scene.
				select {
				case <-app.reloads:
				default:
				}
				app.reloads <- next
			})
			if err != nil {
				s.Logger.Error("layout watch stopped", slog.Any("err", err))
			}
		}()
	}

	ebiten.SetWindowSize(int(s.Doc.Window.Width), int(s.Doc.Window.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(s.Doc.Window.Title)
	ebiten.SetVsyncEnabled(true)

	return ebiten.RunGame(app)
}
