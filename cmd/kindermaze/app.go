package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/dkolarov/kindermaze/config"
	"github.com/dkolarov/kindermaze/game"
	"github.com/dkolarov/kindermaze/layout"
	"github.com/dkolarov/kindermaze/maze"
	"github.com/dkolarov/kindermaze/monitor"
)

// HexColor parses #rrggbb, falling back on parse trouble.
func HexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	u, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

type themeColors struct {
	name       string
	background color.RGBA
	wall       color.RGBA
	player     color.RGBA
	goal       color.RGBA
}

func makeTheme(t config.Theme) themeColors {
	return themeColors{
		name:       t.Name,
		background: HexColor(t.Background, color.RGBA{0x1c, 0x3a, 0x1c, 0xff}),
		wall:       HexColor(t.Wall, color.RGBA{0x8f, 0xd4, 0x8f, 0xff}),
		player:     HexColor(t.Player, color.RGBA{0xfa, 0x36, 0x36, 0xff}),
		goal:       HexColor(t.Goal, color.RGBA{0xed, 0xbc, 0x1e, 0xff}),
	}
}

// App is the ebiten shell around the session: strokes in, frames out. Every
// Update is one simulation tick.
type App struct {
	cfg     *config.Config
	session *game.Session
	mon     *monitor.Monitor

	strokes map[*Stroke]struct{}
	tweens  map[*gween.Tween]*Action

	theme    themeColors
	themeIdx int
	face     font.Face

	overlayAlpha float32
	flashAlpha   float32

	w, h int
}

func NewApp(cfg *config.Config) *App {
	a := &App{
		cfg:     cfg,
		strokes: map[*Stroke]struct{}{},
		tweens:  make(map[*gween.Tween]*Action),
		theme:   makeTheme(cfg.Themes[0]),
		w:       640,
		h:       640,
	}
	a.session = game.NewSession(cfg, a)
	a.session.StartLevel(cfg.StartAge)
	return a
}

// OnBlockedMove is the wall-bump feedback hook. Sound and vibration would
// hang here too; the shell only flashes the character.
func (a *App) OnBlockedMove() {
	t := gween.New(0.8, 0, float32(game.HurtFlash), ease.Linear)
	a.tweens[t] = &Action{onChange: func(v float32) { a.flashAlpha = v }}
}

// OnGoalReached celebrates: overlay fades in, then back out while the
// session waits out its post-goal delay and builds the next maze.
func (a *App) OnGoalReached() {
	in := gween.New(0, 0.55, 0.45, ease.OutQuad)
	out := gween.New(0.55, 0, 0.45, ease.InQuad)
	act := &Action{onChange: func(v float32) { a.overlayAlpha = v }}
	follow := act.next(out)
	follow.onChange = act.onChange
	a.tweens[in] = act
}

func (a *App) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		a.strokes[NewStroke(&TouchStrokeSource{ID: id})] = struct{}{}
	}
	for s := range a.strokes {
		s.Update()
		if s.IsReleased() {
			delete(a.strokes, s)
			continue
		}
		x, y := s.Position()
		a.session.Drag(float64(x), float64(y))
	}
	if len(a.strokes) == 0 && a.session.Dragging() {
		a.session.Release()
	}

	a.handleKeys()

	a.session.SetMetrics(layout.Compute(float64(a.w), float64(a.h), a.session.Maze.Cols, a.session.Maze.Rows))

	dt := 1.0 / float64(ebiten.TPS())
	a.session.Tick(dt)

	for t, act := range a.tweens {
		v, finished := t.Update(float32(dt))
		if act.onChange != nil {
			act.onChange(v)
		}
		if finished {
			for _, f := range act.onFinish {
				f()
			}
			for _, n := range act.nexts {
				n(a)
			}
			delete(a.tweens, t)
		}
	}

	a.publish()
	return nil
}

func (a *App) handleKeys() {
	ageKeys := map[ebiten.Key]int{
		ebiten.KeyDigit3: 3,
		ebiten.KeyDigit4: 4,
		ebiten.KeyDigit5: 5,
		ebiten.KeyDigit6: 6,
	}
	for k, age := range ageKeys {
		if inpututil.IsKeyJustPressed(k) {
			a.session.StartLevel(age)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.themeIdx = (a.themeIdx + 1) % len(a.cfg.Themes)
		a.theme = makeTheme(a.cfg.Themes[a.themeIdx])
		log.WithField("theme", a.theme.name).Info("theme switch")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.StartLevel(a.session.Age)
	}
}

func (a *App) publish() {
	if a.mon == nil {
		return
	}
	m := a.session.Maze
	a.mon.Publish(monitor.Snapshot{
		Cols:    m.Cols,
		Rows:    m.Rows,
		Masks:   m.Masks(),
		PlayerX: a.session.Player.X,
		PlayerY: a.session.Player.Y,
		CellX:   a.session.Player.Cell.X,
		CellY:   a.session.Player.Cell.Y,
		Level:   a.session.Level,
		Coins:   a.session.Coins,
		Won:     a.session.Won(),
	})
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.theme.background)

	met := a.session.Metrics
	if met.CellSize <= 0 {
		ebitenutil.DebugPrintAt(screen, "window too small", 4, 4)
		return
	}

	a.drawWalls(screen, met)
	a.drawGoal(screen, met)
	a.drawPlayer(screen, met)

	if a.overlayAlpha > 0 {
		g := a.theme.goal
		c := color.NRGBA{g.R, g.G, g.B, uint8(a.overlayAlpha * 255)}
		vector.DrawFilledRect(screen, 0, 0, float32(a.w), float32(a.h), c, false)
	}

	a.drawHUD(screen)
}

func (a *App) drawWalls(screen *ebiten.Image, met layout.Metrics) {
	m := a.session.Maze
	size := float32(met.CellSize)
	width := size * 0.08
	if width < 2 {
		width = 2
	}
	for cy := 0; cy < m.Rows; cy++ {
		for cx := 0; cx < m.Cols; cx++ {
			c := m.At(cx, cy)
			x := float32(met.OriginX) + float32(cx)*size
			y := float32(met.OriginY) + float32(cy)*size
			if !c.Open(maze.Up) {
				vector.StrokeLine(screen, x, y, x+size, y, width, a.theme.wall, true)
			}
			if !c.Open(maze.Left) {
				vector.StrokeLine(screen, x, y, x, y+size, width, a.theme.wall, true)
			}
			if cx == m.Cols-1 {
				vector.StrokeLine(screen, x+size, y, x+size, y+size, width, a.theme.wall, true)
			}
			if cy == m.Rows-1 {
				vector.StrokeLine(screen, x, y+size, x+size, y+size, width, a.theme.wall, true)
			}
		}
	}
}

func (a *App) drawGoal(screen *ebiten.Image, met layout.Metrics) {
	m := a.session.Maze
	gx, gy := met.CellCenter(m.Goal.X, m.Goal.Y)
	r := float32(met.CellSize) * 0.28
	vector.DrawFilledCircle(screen, float32(gx), float32(gy), r, a.theme.goal, true)
	// coin hole
	vector.DrawFilledCircle(screen, float32(gx), float32(gy), r*0.45, a.theme.background, true)
}

func (a *App) drawPlayer(screen *ebiten.Image, met layout.Metrics) {
	p := a.session.Player
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), a.theme.player, true)
	if a.flashAlpha > 0 {
		c := color.NRGBA{0xff, 0xff, 0xff, uint8(a.flashAlpha * 255)}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("age %d  level %d  coins %d", a.session.Age, a.session.Level, a.session.Coins)
	if a.face != nil {
		text.Draw(screen, hud, a.face, 12, 34, color.White)
		return
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.w, a.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
