package campaign

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// backgrounds maps a level background identifier to its decoration.
var backgrounds = map[string]struct {
	glyph rune
	color core.Color
	every int // One glyph per this many cells
}{
	"clouds": {'·', core.ColorGray, 37},
	"storm":  {'╱', core.ColorSky, 19},
	"dusk":   {'˙', core.ColorOrange, 41},
	"night":  {'✦', core.ColorSmoke, 53},
}

// viewport maps world units onto the playfield part of the screen.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(world config.WorldConfig, dst *core.Screen) viewport {
	h := max(1, dst.Height()-hudRows)
	return viewport{
		sx:  float64(dst.Width()) / world.Width,
		sy:  float64(h) / world.Height,
		top: hudRows,
	}
}

// rect converts a world box to screen cells. Every visible actor covers at
// least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x := int(math.Floor(b.X * v.sx))
	y := int(math.Floor(b.Y*v.sy)) + v.top
	w := max(1, int(math.Round(b.W*v.sx)))
	h := max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// Render draws the current campaign screen into dst.
func (c *Campaign) Render(dst *core.Screen) {
	dst.Clear()

	if c.level == nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start level", core.ColorRed)
		if c.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, c.err.Error(), core.ColorGray)
		}
		return
	}

	v := newViewport(c.level.World(), dst)
	c.drawBackground(dst)
	for _, a := range c.scene.Actors() {
		if a.Destroyed() {
			continue
		}
		r := v.rect(a.Bounds())
		// Keep sprites clear of the HUD row.
		if r.Y < v.top {
			r.H -= v.top - r.Y
			r.Y = v.top
		}
		drawSprite(dst, r, a.Kind())
		if b, ok := a.(*actor.Boss); ok && b.Shielded() {
			dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorBrightBlue)
		}
	}
	c.drawHUD(dst)

	switch c.phase {
	case PhaseBanner:
		c.drawBanner(dst)
	case PhasePaused:
		c.drawPauseMenu(dst)
	case PhaseGameOver:
		c.drawEndScreen(dst, "GAME OVER", core.ColorBrightRed)
	case PhaseVictory:
		c.drawEndScreen(dst, "VICTORY", core.ColorBrightGreen)
	}
}

func drawSprite(dst *core.Screen, r core.Rect, kind actor.Kind) {
	sp, ok := sprites[kind]
	if !ok {
		dst.DrawRect(r, '?', core.ColorDefault)
		return
	}
	for dy := 0; dy < r.H; dy++ {
		row := []rune(sp.rows[dy*len(sp.rows)/r.H])
		for dx := 0; dx < r.W; dx++ {
			dst.SetColor(r.X+dx, r.Y+dy, row[dx*len(row)/r.W], sp.color)
		}
	}
}

// drawBackground scatters the level's background glyph, drifting left as
// the level runs.
func (c *Campaign) drawBackground(dst *core.Screen) {
	bg, ok := backgrounds[c.level.Config().Background]
	if !ok {
		return
	}
	shift := c.level.Ticks() / 4
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if ((x+shift)*7+y*13)%bg.every == 0 {
				dst.SetColor(x, y, bg.glyph, bg.color)
			}
		}
	}
}

func (c *Campaign) drawHUD(dst *core.Screen) {
	p := c.level.Player()
	hearts := strings.Repeat("♥", p.Health()) + strings.Repeat("♡", max(0, p.MaxHealth()-p.Health()))

	var goal string
	if c.level.Config().Kind == config.KindBoss {
		goal = "BOSS"
		if b := c.level.Boss(); b != nil {
			goal = fmt.Sprintf("BOSS %d/%d", b.Health(), b.MaxHealth())
			if b.Shielded() {
				goal += " [SHIELD]"
			}
		}
	} else {
		goal = fmt.Sprintf("KILLS %d/%d", c.level.Kills(), c.level.Config().KillTarget)
	}

	title := strings.ToUpper(c.level.Config().Name)
	dst.DrawTextColor(0, 0, title, core.ColorBrightWhite)
	dst.DrawTextColor(len([]rune(title))+2, 0, hearts, core.ColorBrightRed)
	right := fmt.Sprintf("%s  SCORE %d", goal, c.Score())
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorYellow)

	if c.breach > 0 && c.phase == PhasePlaying {
		dst.DrawTextCentered(hudRows+1, "DEFENSES BREACHED", core.ColorBrightRed)
	}
}

func (c *Campaign) drawBanner(dst *core.Screen) {
	cfg := c.level.Config()
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, strings.ToUpper(cfg.Name), core.ColorBrightYellow)
	if cfg.Kind == config.KindBoss {
		dst.DrawTextCentered(mid+1, "Destroy the boss. Shots bounce off its shield.", core.ColorWhite)
	} else {
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Destroy %d enemies. Do not let them pass.", cfg.KillTarget), core.ColorWhite)
	}
}

func (c *Campaign) drawPauseMenu(dst *core.Screen) {
	w, h := 24, len(pauseItems)+4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, "PAUSED", core.ColorBrightYellow)
	for i, item := range pauseItems {
		color, text := core.ColorWhite, "  "+item+"  "
		if i == c.cursor {
			color, text = core.ColorBrightCyan, "> "+item+" <"
		}
		dst.DrawTextCentered(box.Y+3+i, text, color)
	}
}

func (c *Campaign) drawEndScreen(dst *core.Screen, title string, color core.Color) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, title, color)
	dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", c.Score()), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Levels cleared: %d", c.levelsCleared), core.ColorWhite)
	dst.DrawTextCentered(mid+3, "R restart   B menu   Q quit", core.ColorGray)
}
