package actor

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// Player is the user-controlled aircraft. Movement commands set a direction
// that is applied every tick until the matching stop command.
type Player struct {
	Fighter
	cfg        config.PlayerConfig
	projectile config.ProjectileConfig
	worldWidth float64

	dirX, dirY int
	kills      int
}

// NewPlayer creates the player at its configured start position.
func NewPlayer(cfg config.PlayerConfig, projectile config.ProjectileConfig, health int, worldWidth float64) *Player {
	return &Player{
		Fighter:    newFighter(KindPlayer, cfg.X, cfg.Y, cfg.Size.W, cfg.Size.H, health),
		cfg:        cfg,
		projectile: projectile,
		worldWidth: worldWidth,
	}
}

func (p *Player) MoveUp()    { p.dirY = -1 }
func (p *Player) MoveDown()  { p.dirY = 1 }
func (p *Player) MoveLeft()  { p.dirX = -1 }
func (p *Player) MoveRight() { p.dirX = 1 }

// StopVertical cancels vertical movement.
func (p *Player) StopVertical() { p.dirY = 0 }

// StopHorizontal cancels horizontal movement.
func (p *Player) StopHorizontal() { p.dirX = 0 }

// Stop cancels movement on both axes.
func (p *Player) Stop() {
	p.dirX, p.dirY = 0, 0
}

// Direction returns the current movement direction on each axis.
func (p *Player) Direction() (int, int) {
	return p.dirX, p.dirY
}

// Update moves the player. The step on an axis is reverted when it would
// leave the configured bounds. The player fires through Fire, not Update.
func (p *Player) Update(_ *rand.Rand) *Projectile {
	if p.destroyed {
		return nil
	}

	prevY := p.translateY
	p.translateY += float64(p.dirY) * p.cfg.Speed
	if y := p.layoutY + p.translateY; y < p.cfg.MinY || y > p.cfg.MaxY {
		p.translateY = prevY
	}

	prevX := p.translateX
	p.translateX += float64(p.dirX) * p.cfg.Speed
	if x := p.layoutX + p.translateX; x < p.cfg.MinX || x > p.cfg.MaxX {
		p.translateX = prevX
	}
	return nil
}

// Fire returns a new user projectile, or nil when the player is destroyed.
func (p *Player) Fire() *Projectile {
	if p.destroyed {
		return nil
	}
	x, y := p.Position()
	return NewProjectile(KindUserProjectile, x+p.cfg.ProjectileOffset.X, y+p.cfg.ProjectileOffset.Y, p.projectile, p.worldWidth)
}

// Kills returns the kill counter. It goes negative when enemies penetrate
// before the player scores.
func (p *Player) Kills() int {
	return p.kills
}

func (p *Player) IncrementKills() { p.kills++ }
func (p *Player) DecrementKills() { p.kills-- }
