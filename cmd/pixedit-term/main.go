// Command pixedit-term is an interactive terminal pixel editor built on the
// pixedit engine. One terminal cell is one image pixel; painting, hover
// preview, undo and redo all run through the same editor loop a GPU host
// would use.
//
// Controls:
//
//	left mouse   paint
//	b            toggle brush shape (ellipse / rectangle)
//	[ / ]        shrink / grow brush
//	1-9          select palette color (9 erases)
//	Ctrl+Z       undo
//	Ctrl+Y       redo
//	q / Esc      quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pixedit"
)

// canvas origin in screen cells, below the status line.
const (
	originX = 2
	originY = 2
)

func main() {
	var (
		width  = flag.Int("width", 48, "canvas width in pixels")
		height = flag.Int("height", 24, "canvas height in pixels")
	)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	be := newTermBackend(screen)
	ed := pixedit.NewEditor[pixedit.RGBA8](be)
	img := pixedit.NewBuffer[pixedit.RGBA8](*width, *height)

	var (
		palette  = makePalette()
		colorIdx = 0
		size     = 1
		round    = true
		painting = false
	)

	brush := func() pixedit.Brush {
		if round {
			return pixedit.Ellipse(size, size)
		}
		return pixedit.Rect(size, size)
	}

	render := func(in pixedit.Input) {
		in.OriginX, in.OriginY = originX, originY
		screen.Clear()
		drawStatus(screen, palette, colorIdx, size, round)
		ed.Edit(img, in, brush(), palette[colorIdx])
		screen.Show()
	}
	render(pixedit.Input{})

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			render(pixedit.Input{})

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyCtrlZ:
				render(pixedit.Input{Keys: []pixedit.KeyEvent{{Key: pixedit.KeyZ, Mod: pixedit.ModCommand}}})
			case ev.Key() == tcell.KeyCtrlY:
				render(pixedit.Input{Keys: []pixedit.KeyEvent{{Key: pixedit.KeyY, Mod: pixedit.ModCommand}}})
			case ev.Key() == tcell.KeyRune:
				switch r := ev.Rune(); {
				case r == 'q':
					return
				case r == 'b':
					round = !round
					render(pixedit.Input{})
				case r == '[':
					if size > 0 {
						size--
					}
					render(pixedit.Input{})
				case r == ']':
					if size < 9 {
						size++
					}
					render(pixedit.Input{})
				case r >= '1' && r <= '9':
					if i := int(r - '1'); i < len(palette) {
						colorIdx = i
					}
					render(pixedit.Input{})
				}
			}

		case *tcell.EventMouse:
			x, y := ev.Position()
			ptr := &pixedit.Pointer{X: float64(x), Y: float64(y)}
			if ev.Buttons()&tcell.Button1 != 0 {
				render(pixedit.Input{Paint: ptr, Hover: ptr, GestureStart: !painting})
				painting = true
			} else {
				painting = false
				render(pixedit.Input{Hover: ptr})
			}
		}
	}
}

// makePalette builds eight hue-stepped paint colors plus an eraser slot.
func makePalette() []pixedit.RGBA8 {
	palette := make([]pixedit.RGBA8, 0, 9)
	for i := 0; i < 8; i++ {
		r, g, b := colorful.Hsv(float64(i)*45, 0.75, 0.95).RGB255()
		palette = append(palette, pixedit.RGBA8{R: r, G: g, B: b, A: 255})
	}
	return append(palette, pixedit.Transparent)
}

func drawStatus(screen tcell.Screen, palette []pixedit.RGBA8, colorIdx, size int, round bool) {
	shape := "ellipse"
	if !round {
		shape = "rect"
	}
	msg := fmt.Sprintf(" pixedit  b:%s  [/]:size %d  1-9:color  Ctrl+Z/Y:undo/redo  q:quit", shape, size)
	for i, r := range msg {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}

	// Palette swatches, current selection bracketed.
	x := len(msg) + 2
	for i, px := range palette {
		st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B)))
		mark := ' '
		if i == colorIdx {
			mark = '*'
		}
		screen.SetContent(x+i*2, 0, mark, nil, st)
		screen.SetContent(x+i*2+1, 0, ' ', nil, st)
	}
}

// termBackend renders tile textures as colored terminal cells. It keeps the
// uploaded patches as its "textures"; DrawTexture paints them cell by cell.
type termBackend struct {
	screen   tcell.Screen
	textures map[pixedit.TextureID]*pixedit.Patch
	nextID   pixedit.TextureID
}

func newTermBackend(screen tcell.Screen) *termBackend {
	return &termBackend{
		screen:   screen,
		textures: make(map[pixedit.TextureID]*pixedit.Patch),
	}
}

// MaxTextureSide keeps tiles small so dirty refreshes touch few cells.
func (b *termBackend) MaxTextureSide() int { return 32 }

func (b *termBackend) Alloc(label string, p *pixedit.Patch) pixedit.TextureID {
	b.nextID++
	b.textures[b.nextID] = p
	return b.nextID
}

func (b *termBackend) Update(id pixedit.TextureID, p *pixedit.Patch) {
	if _, ok := b.textures[id]; ok {
		b.textures[id] = p
	}
}

func (b *termBackend) DrawTexture(id pixedit.TextureID, x, y, w, h int) {
	p, ok := b.textures[id]
	if !ok {
		return
	}
	for j := 0; j < p.Height(); j++ {
		for i := 0; i < p.Width(); i++ {
			c := p.At(i, j)
			st := tcell.StyleDefault
			if c.A == 0 {
				// Checkerboard marks transparency.
				shade := int32(40)
				if (x+i+y+j)%2 == 0 {
					shade = 55
				}
				st = st.Background(tcell.NewRGBColor(shade, shade, shade))
			} else {
				st = st.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			b.screen.SetContent(x+i, y+j, ' ', nil, st)
		}
	}
}

func (b *termBackend) StrokeRect(x, y, w, h int, c color.RGBA) {
	for i := 0; i < w; i++ {
		b.mark(x+i, y, c)
		b.mark(x+i, y+h-1, c)
	}
	for j := 0; j < h; j++ {
		b.mark(x, y+j, c)
		b.mark(x+w-1, y+j, c)
	}
}

func (b *termBackend) StrokePolyline(pts []pixedit.Point, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		b.line(pts[i-1], pts[i], c)
	}
	if len(pts) == 1 {
		b.mark(pts[0].X, pts[0].Y, c)
	}
}

// mark overlays a preview glyph on a cell without repainting its background.
func (b *termBackend) mark(x, y int, c color.RGBA) {
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	b.screen.SetContent(x, y, '+', nil, st)
}

// line walks one segment with the integer midpoint algorithm.
func (b *termBackend) line(p0, p1 pixedit.Point, c color.RGBA) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy

	x, y := p0.X, p0.Y
	for {
		b.mark(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
