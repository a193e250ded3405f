// internal/entity/registry.go
package entity

import (
	"log"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/physics"
	"go-arena-survival/internal/types"
)

// Registry владеет списками живых врагов и вражеских снарядов.
// Идентификаторы сущностей выдаются строго по возрастанию; соответствие
// коллизионное тело <-> сущность поддерживается явными картами при
// спавне и уничтожении, без сканирования списков.
type Registry struct {
	wave    *component.Wave
	handles *physics.HandleSource

	enemies     []*component.Enemy
	projectiles []*component.Projectile

	nextID types.EntityID

	enemyByBody map[types.BodyID]*component.Enemy
	bodyByEnemy map[types.EntityID]types.BodyID
	projByBody  map[types.BodyID]*component.Projectile
}

// NewRegistry создаёт пустой реестр. Волновое состояние нужно для
// масштабирования статов при спавне.
func NewRegistry(wave *component.Wave, handles *physics.HandleSource) *Registry {
	return &Registry{
		wave:        wave,
		handles:     handles,
		nextID:      0,
		enemyByBody: make(map[types.BodyID]*component.Enemy),
		bodyByEnemy: make(map[types.EntityID]types.BodyID),
		projByBody:  make(map[types.BodyID]*component.Projectile),
	}
}

// SpawnEnemy создаёт врага указанного типа в точке (x, y).
// Здоровье и урон умножаются на текущий волновой множитель, скорость —
// на min(speedCap, 1 + wave*0.1). MaxHealth фиксируется равным
// отмасштабированному здоровью. Для неизвестного типа возвращает nil
// и пишет предупреждение в лог — никогда не паникует.
func (r *Registry) SpawnEnemy(defID string, x, y float64) *component.Enemy {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("SpawnEnemy: unknown enemy type %q", defID)
		return nil
	}

	mult := r.wave.Multiplier
	health := int(float64(def.Health) * mult)
	if health < 1 {
		health = 1
	}
	speedMult := math.Min(def.SpeedCap, 1.0+float64(r.wave.Number)*config.EnemySpeedPerWave)

	r.nextID++
	e := &component.Enemy{
		ID:           r.nextID,
		Body:         r.handles.NewBody(),
		DefID:        def.ID,
		X:            x,
		Y:            y,
		Health:       health,
		MaxHealth:    health,
		Shield:       int(float64(health) * def.ShieldFactor),
		Damage:       def.Damage * mult,
		Speed:        def.Speed * speedMult,
		Radius:       def.Radius,
		ScoreChance:  def.ScoreChance,
		FireInterval: def.FireInterval,
		FireTimer:    def.FireInterval,
	}
	r.enemies = append(r.enemies, e)
	r.enemyByBody[e.Body] = e
	r.bodyByEnemy[e.ID] = e.Body
	return e
}

// SpawnEnemyProjectile создаёт вражеский снаряд, летящий из точки (x, y)
// под углом angle. Вражеские снаряды не пробивают: один контакт с игроком
// либо препятствием завершает полёт.
func (r *Registry) SpawnEnemyProjectile(x, y, angle float64, def defs.EnemyDefinition) *component.Projectile {
	p := &component.Projectile{
		Body:             r.handles.NewBody(),
		Owner:            component.OwnerEnemy,
		X:                x,
		Y:                y,
		VX:               math.Cos(angle) * def.ProjectileSpeed,
		VY:               math.Sin(angle) * def.ProjectileSpeed,
		Radius:           def.ProjectileRadius,
		Damage:           def.ProjectileDamage * r.wave.Multiplier,
		DamageMultiplier: 1.0,
		Pierce:           1,
	}
	r.projectiles = append(r.projectiles, p)
	r.projByBody[p.Body] = p
	return p
}

// EnemyByBody находит живого врага по хэндлу коллизионного тела.
// Уничтоженные сущности исключаются из всех дальнейших резолвов.
func (r *Registry) EnemyByBody(body types.BodyID) *component.Enemy {
	e, ok := r.enemyByBody[body]
	if !ok || e.IsDestroyed {
		return nil
	}
	return e
}

// ProjectileByBody находит живой вражеский снаряд по хэндлу тела.
func (r *Registry) ProjectileByBody(body types.BodyID) *component.Projectile {
	p, ok := r.projByBody[body]
	if !ok || p.IsDestroyed {
		return nil
	}
	return p
}

// Update выполняет покадровую развёртку обоих списков в обратном порядке
// индексов: удаление на месте не должно пропускать элементы. Живые враги
// продвигаются к игроку, снаряды — по своей скорости; вышедшие за пределы
// поля снаряды уничтожаются.
func (r *Registry) Update(dt, playerX, playerY float64) {
	for i := len(r.enemies) - 1; i >= 0; i-- {
		e := r.enemies[i]
		if e.IsDestroyed {
			r.removeEnemyAt(i)
			continue
		}
		angle := math.Atan2(playerY-e.Y, playerX-e.X)
		e.X += math.Cos(angle)*e.Speed*dt + e.KickVX*dt
		e.Y += math.Sin(angle)*e.Speed*dt + e.KickVY*dt
		damp := 1.0 - config.KnockDamping*dt
		if damp < 0 {
			damp = 0
		}
		e.KickVX *= damp
		e.KickVY *= damp
		if e.FireInterval > 0 {
			e.FireTimer -= dt
		}
	}

	for i := len(r.projectiles) - 1; i >= 0; i-- {
		p := r.projectiles[i]
		if p.IsDestroyed {
			r.removeProjectileAt(i)
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.X < -p.Radius || p.X > config.ScreenWidth+p.Radius ||
			p.Y < -p.Radius || p.Y > config.ScreenHeight+p.Radius {
			p.Destroy()
			r.removeProjectileAt(i)
		}
	}
}

// ReadyShooters возвращает врагов, у которых подошёл таймер выстрела,
// и перезаряжает их. Сам выстрел выполняет боевая система.
func (r *Registry) ReadyShooters() []*component.Enemy {
	var ready []*component.Enemy
	for _, e := range r.enemies {
		if e.IsDestroyed || e.FireInterval <= 0 {
			continue
		}
		if e.FireTimer <= 0 {
			e.FireTimer = e.FireInterval
			ready = append(ready, e)
		}
	}
	return ready
}

// ActiveEnemies — число живых врагов.
func (r *Registry) ActiveEnemies() int {
	return len(r.enemies)
}

// Enemies — активный список врагов (только для чтения вызывающим).
func (r *Registry) Enemies() []*component.Enemy {
	return r.enemies
}

// Projectiles — активный список вражеских снарядов.
func (r *Registry) Projectiles() []*component.Projectile {
	return r.projectiles
}

// ClearProjectiles принудительно уничтожает все вражеские снаряды
// (используется при завершении волны).
func (r *Registry) ClearProjectiles() {
	for i := len(r.projectiles) - 1; i >= 0; i-- {
		r.projectiles[i].Destroy()
		r.removeProjectileAt(i)
	}
}

// Clear принудительно уничтожает и опустошает оба списка
// (сброс волны, рестарт игры).
func (r *Registry) Clear() {
	for i := len(r.enemies) - 1; i >= 0; i-- {
		r.enemies[i].Destroy()
		r.removeEnemyAt(i)
	}
	r.ClearProjectiles()
}

func (r *Registry) removeEnemyAt(i int) {
	e := r.enemies[i]
	delete(r.enemyByBody, e.Body)
	delete(r.bodyByEnemy, e.ID)
	r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
}

func (r *Registry) removeProjectileAt(i int) {
	p := r.projectiles[i]
	delete(r.projByBody, p.Body)
	r.projectiles = append(r.projectiles[:i], r.projectiles[i+1:]...)
}
