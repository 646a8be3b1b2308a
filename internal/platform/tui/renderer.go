package tui

import (
	"fmt"

	"github.com/dmasubuchi/kurumegrid/internal/assets"
	"github.com/dmasubuchi/kurumegrid/internal/core"
	"github.com/dmasubuchi/kurumegrid/internal/game"
	"github.com/dmasubuchi/kurumegrid/internal/level"
)

const hudHeight = 2

// Renderer draws the session onto a screen buffer. It consumes the session
// strictly read-only.
type Renderer struct {
	cfg assets.Config
}

// NewRenderer creates a renderer with the given asset configuration.
func NewRenderer(cfg assets.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// DrawTitle renders the title scene with the level picker.
func (r *Renderer) DrawTitle(dst *core.Screen, levels []level.Level, cursor int) {
	dst.Clear()

	dst.DrawTextCentered(1, "K U R U M E G R I D")
	dst.DrawTextCentered(2, "reach the goal before the clock runs out")

	top := 4
	for i, lvl := range levels {
		line := fmt.Sprintf("  %d. %s (%dx%d)", lvl.ID, lvl.Name, lvl.Width, lvl.Height)
		if i == cursor {
			line = "> " + line[2:]
			dst.DrawTextColored((dst.Width()-len(line))/2, top+i, line, core.ColorBrightGreen)
		} else {
			dst.DrawTextCentered(top+i, line)
		}
	}

	dst.DrawTextCentered(top+len(levels)+2, "arrows: choose   enter: play   q: quit")
}

// DrawSession renders the playing scene: HUD, tile map, player, enemies.
func (r *Renderer) DrawSession(dst *core.Screen, sess *game.Session) {
	dst.Clear()

	lvl := sess.Level()
	if lvl == nil {
		return
	}

	r.drawHUD(dst, sess, lvl)

	tileW := r.cfg.EffectiveTileSize()
	offX := core.Max(0, (dst.Width()-lvl.Width*tileW)/2)
	offY := hudHeight + core.Max(0, (dst.Height()-hudHeight-lvl.Height)/2)

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			glyph, color := r.tileGlyph(lvl.TileAt(x, y))
			dst.SetColored(offX+x*tileW, offY+y, glyph, color)
		}
	}

	// Enemies draw over tiles, player draws over everything.
	for _, e := range sess.Enemies() {
		ex := int(e.X + 0.5)
		ey := int(e.Y + 0.5)
		dst.SetColored(offX+ex*tileW, offY+ey, r.cfg.Glyph(assets.KeyEnemy), core.ColorBrightRed)
	}

	px, py := sess.Player()
	dst.SetColored(offX+px*tileW, offY+py, r.cfg.Glyph(assets.KeyPlayer), core.ColorBrightGreen)
}

// DrawIdle renders the post-session scene: the final board plus the outcome.
func (r *Renderer) DrawIdle(dst *core.Screen, sess *game.Session) {
	r.DrawSession(dst, sess)
	r.DrawOverlay(dst, outcomeHeadline(sess.Outcome()), "enter: back to title   r: retry   q: quit")
}

// DrawOverlay draws a centered two-line message box over the current frame.
func (r *Renderer) DrawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// drawHUD draws the top status bar.
func (r *Renderer) drawHUD(dst *core.Screen, sess *game.Session, lvl *level.Level) {
	hud := fmt.Sprintf(" %s — time left: %ds", lvl.Name, sess.TimeRemaining())
	color := core.ColorDefault
	if sess.TimeRemaining() <= 5 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, hud, color)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// tileGlyph maps a tile character to its glyph and color. The start marker
// is consumed at init and renders as floor.
func (r *Renderer) tileGlyph(ch rune) (rune, core.Color) {
	switch ch {
	case level.TileWall:
		return r.cfg.Glyph(assets.KeyWall), core.ColorGray
	case level.TileGoal:
		return r.cfg.Glyph(assets.KeyGoal), core.ColorBrightYellow
	default:
		return r.cfg.Glyph(assets.KeyFloor), core.ColorGray
	}
}

// outcomeHeadline turns an outcome into the overlay headline.
func outcomeHeadline(o game.Outcome) string {
	switch o {
	case game.OutcomeClear:
		return "Level clear!"
	case game.OutcomeTimeUp:
		return "Game over: time up"
	case game.OutcomeCaught:
		return "Game over: caught by enemy"
	case game.OutcomeAborted:
		return "Session ended"
	default:
		return ""
	}
}
