// internal/system/shooter.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/utils"
)

// ShooterSystem выполняет выстрелы дальнобойных врагов: реестр ведёт
// таймеры перезарядки, система порождает снаряды в сторону игрока.
type ShooterSystem struct {
	registry *entity.Registry
	player   *component.Player
}

func NewShooterSystem(registry *entity.Registry, player *component.Player) *ShooterSystem {
	return &ShooterSystem{registry: registry, player: player}
}

func (s *ShooterSystem) Update(dt float64) {
	for _, e := range s.registry.ReadyShooters() {
		def, ok := defs.EnemyLibrary[e.DefID]
		if !ok || def.ProjectileSpeed <= 0 {
			continue
		}
		angle := utils.AngleTo(e.X, e.Y, s.player.X, s.player.Y)
		s.registry.SpawnEnemyProjectile(e.X, e.Y, angle, def)
	}
}
