package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	LavaChar     = '▒'
	PlayerChar   = '▓'
	CoinChar     = '●'
	FireballChar = '✶'
	ActorChar    = '#'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps level units to screen cells.
type viewport struct {
	scaleX, scaleY int
	originX        int // Screen column of level x=0, negative when scrolled
	originY        int // Screen row of level y=0
}

func (v viewport) col(x float64) int { return v.originX + int(math.Floor(x*float64(v.scaleX))) }
func (v viewport) row(y float64) int { return v.originY + int(math.Floor(y*float64(v.scaleY))) }

// newViewport centers small levels and scrolls large ones to keep the
// player in view.
func (g *Game) newViewport(dst *core.Screen) viewport {
	v := viewport{scaleX: g.cfg.View.ScaleX, scaleY: g.cfg.View.ScaleY}
	if v.scaleX <= 0 {
		v.scaleX = 1
	}
	if v.scaleY <= 0 {
		v.scaleY = 1
	}

	fieldW := dst.Width()
	fieldH := dst.Height() - hudRows
	levelW := g.level.Width() * v.scaleX
	levelH := g.level.Height() * v.scaleY

	focusX, focusY := levelW/2, levelH/2
	if p := g.level.Player(); p != nil {
		focusX = int((p.Left() + p.Size().X/2) * float64(v.scaleX))
		focusY = int((p.Top() + p.Size().Y/2) * float64(v.scaleY))
	}

	v.originX = axisOrigin(fieldW, levelW, focusX)
	v.originY = hudRows + axisOrigin(fieldH, levelH, focusY)
	return v
}

// axisOrigin returns the screen offset of level coordinate 0 along one axis.
func axisOrigin(field, size, focus int) int {
	if size <= field {
		return (field - size) / 2
	}
	start := core.Clamp(focus-field/2, 0, size-field)
	return -start
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.level == nil {
		msg := "Level could not be loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	v := g.newViewport(dst)
	g.renderGrid(dst, v)
	for _, a := range g.level.Actors() {
		g.renderActor(dst, v, a)
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderGrid(dst *core.Screen, v viewport) {
	for y := range g.level.Height() {
		for x := range g.level.Width() {
			var glyph rune
			var color core.Color
			switch g.level.Cell(x, y) {
			case KindWall:
				glyph, color = WallChar, core.ColorGray
			case KindLava:
				glyph, color = LavaChar, core.ColorRed
			default:
				continue
			}

			left, top := v.col(float64(x)), v.row(float64(y))
			for sy := top; sy < top+v.scaleY; sy++ {
				if sy < hudRows {
					continue
				}
				for sx := left; sx < left+v.scaleX; sx++ {
					dst.SetColored(sx, sy, glyph, color)
				}
			}
		}
	}
}

func (g *Game) renderActor(dst *core.Screen, v viewport, a *Actor) {
	glyph, color := actorGlyph(a, g.level.Status())

	left, top := v.col(a.Left()), v.row(a.Top())
	right := v.originX + int(math.Ceil(a.Right()*float64(v.scaleX)))
	bottom := v.originY + int(math.Ceil(a.Bottom()*float64(v.scaleY)))
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		if a.Size().Y == 0 {
			return
		}
		bottom = top + 1
	}

	for sy := top; sy < bottom; sy++ {
		if sy < hudRows {
			continue
		}
		for sx := left; sx < right; sx++ {
			dst.SetColored(sx, sy, glyph, color)
		}
	}
}

func actorGlyph(a *Actor, status Status) (rune, core.Color) {
	switch a.Kind() {
	case KindPlayer:
		if status == StatusLost {
			return PlayerChar, core.ColorBrightRed
		}
		return PlayerChar, core.ColorBrightWhite
	case KindCoin:
		return CoinChar, core.ColorBrightYellow
	case KindFireball:
		return FireballChar, core.ColorOrange
	default:
		return ActorChar, core.ColorDefault
	}
}

// renderHUD draws the level name and the coin counter on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	name := g.def.Name
	if name == "" {
		name = g.def.ID
	}
	dst.DrawText(1, 0, name)

	coins := fmt.Sprintf("Coins: %d/%d", g.level.CoinsCollected(), g.level.CoinsCollected()+g.CoinsLeft())
	dst.DrawTextColored(dst.Width()-len(coins)-1, 0, coins, core.ColorYellow)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	if !g.level.IsFinished() {
		return
	}
	switch g.level.Status() {
	case StatusWon:
		drawCenteredBox(dst, "LEVEL COMPLETE", "Press R to play again")
	case StatusLost:
		drawCenteredBox(dst, "YOU LOST", "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)
	dst.DrawHLine(boxX+2, boxY+2, boxW-4, '┄')

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
