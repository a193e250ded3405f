// internal/entity/projectiles.go
package entity

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/physics"
	"go-arena-survival/internal/types"
)

// ProjectilePool владеет снарядами игрока. Вражеские снаряды живут
// в Registry: уничтожение снаряда выполняет тот менеджер, который его
// породил.
type ProjectilePool struct {
	handles *physics.HandleSource

	projectiles []*component.Projectile
	byBody      map[types.BodyID]*component.Projectile
}

// NewProjectilePool создаёт пустой пул.
func NewProjectilePool(handles *physics.HandleSource) *ProjectilePool {
	return &ProjectilePool{
		handles: handles,
		byBody:  make(map[types.BodyID]*component.Projectile),
	}
}

// SpawnSpec — параметры снаряда игрока после применения апгрейдов оружия.
type SpawnSpec struct {
	X, Y, Angle      float64
	Speed            float64
	Damage           float64
	DamageMultiplier float64
	Knockback        float64
	Pierce           int
	CanCutTiles      bool
}

// Spawn создаёт снаряд игрока. Pierce меньше единицы трактуется как
// обычный непробивающий снаряд.
func (pool *ProjectilePool) Spawn(spec SpawnSpec) *component.Projectile {
	pierce := spec.Pierce
	if pierce < 1 {
		pierce = 1
	}
	mult := spec.DamageMultiplier
	if mult <= 0 {
		mult = 1.0
	}
	p := &component.Projectile{
		Body:             pool.handles.NewBody(),
		Owner:            component.OwnerPlayer,
		X:                spec.X,
		Y:                spec.Y,
		VX:               math.Cos(spec.Angle) * spec.Speed,
		VY:               math.Sin(spec.Angle) * spec.Speed,
		Radius:           config.ProjectileRadius,
		Damage:           spec.Damage,
		DamageMultiplier: mult,
		Knockback:        spec.Knockback,
		Pierce:           pierce,
		CanCutTiles:      spec.CanCutTiles,
	}
	pool.projectiles = append(pool.projectiles, p)
	pool.byBody[p.Body] = p
	return p
}

// ByBody находит живой снаряд по хэндлу коллизионного тела.
func (pool *ProjectilePool) ByBody(body types.BodyID) *component.Projectile {
	p, ok := pool.byBody[body]
	if !ok || p.IsDestroyed {
		return nil
	}
	return p
}

// Update продвигает снаряды и убирает уничтоженные либо покинувшие поле.
// Обход в обратном порядке индексов, как и в Registry.
func (pool *ProjectilePool) Update(dt float64) {
	for i := len(pool.projectiles) - 1; i >= 0; i-- {
		p := pool.projectiles[i]
		if p.IsDestroyed {
			pool.removeAt(i)
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.X < -p.Radius || p.X > config.ScreenWidth+p.Radius ||
			p.Y < -p.Radius || p.Y > config.ScreenHeight+p.Radius {
			p.Destroy()
			pool.removeAt(i)
		}
	}
}

// Active — число живых снарядов игрока.
func (pool *ProjectilePool) Active() int {
	return len(pool.projectiles)
}

// Projectiles — активный список (для отрисовки хостом).
func (pool *ProjectilePool) Projectiles() []*component.Projectile {
	return pool.projectiles
}

// Clear принудительно уничтожает и опустошает пул.
func (pool *ProjectilePool) Clear() {
	for i := len(pool.projectiles) - 1; i >= 0; i-- {
		pool.projectiles[i].Destroy()
		pool.removeAt(i)
	}
}

func (pool *ProjectilePool) removeAt(i int) {
	p := pool.projectiles[i]
	delete(pool.byBody, p.Body)
	pool.projectiles = append(pool.projectiles[:i], pool.projectiles[i+1:]...)
}
