// internal/component/player.go
package component

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/types"
)

// Player хранит боевое состояние игрока.
type Player struct {
	Body types.BodyID

	X, Y float64

	Health    int
	MaxHealth int

	// Импульс отбрасывания, интегрируется и гасится в цикле сессии.
	KickVX, KickVY float64

	// Игровое время последнего успешного урона. Монотонно не убывает.
	lastDamageAt float64
}

// NewPlayer создаёт игрока с базовым здоровьем.
func NewPlayer(body types.BodyID, x, y float64) *Player {
	return &Player{
		Body:         body,
		X:            x,
		Y:            y,
		Health:       config.PlayerMaxHealth,
		MaxHealth:    config.PlayerMaxHealth,
		lastDamageAt: -config.PlayerDamageCooldown,
	}
}

// CanTakeDamage — открыто ли окно кулдауна. Контакты внутри окна
// игнорируются целиком, включая уничтожение снаряда на этом пути.
func (p *Player) CanTakeDamage(now float64) bool {
	return now-p.lastDamageAt >= config.PlayerDamageCooldown
}

// ApplyDamage наносит урон и сдвигает таймстемп кулдауна.
// Вызывать только после успешной проверки CanTakeDamage.
func (p *Player) ApplyDamage(damage int, now float64) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	if now > p.lastDamageAt {
		p.lastDamageAt = now
	}
}

// Heal восстанавливает здоровье, не превышая максимум.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IsDead — здоровье исчерпано.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
