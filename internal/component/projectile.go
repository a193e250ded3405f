// internal/component/projectile.go
package component

import "go-arena-survival/internal/types"

// ProjectileOwner — чьим менеджером порождён снаряд.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// Projectile представляет летящий снаряд.
// Жизненный цикл: Active -> Destroyed, переход односторонний.
type Projectile struct {
	Body  types.BodyID
	Owner ProjectileOwner

	X, Y   float64
	VX, VY float64
	Radius float64

	Damage           float64
	DamageMultiplier float64
	Knockback        float64

	// Pierce — сколько различных целей снаряд может поразить.
	Pierce             int
	CurrentPierceCount int

	// CanCutTiles — проходит ли снаряд сквозь препятствия, расходуя пирс.
	CanCutTiles bool

	// Хук контакта с препятствием (задаётся вариантами снарядов).
	OnObstacleHit func()

	// Память попаданий: цели, уже поражённые этим снарядом.
	// Пополняется только через RecordHit и не очищается до уничтожения.
	hitTargets map[types.EntityID]struct{}

	IsDestroyed bool
}

// CanHit сообщает, можно ли ещё ударить врага с данным id.
func (p *Projectile) CanHit(id types.EntityID) bool {
	if p.IsDestroyed {
		return false
	}
	_, seen := p.hitTargets[id]
	return !seen
}

// RecordHit фиксирует попадание по цели и расходует один заряд пирса.
// Исчерпание лимита уничтожает снаряд.
func (p *Projectile) RecordHit(id types.EntityID) {
	if p.IsDestroyed {
		return
	}
	if p.hitTargets == nil {
		p.hitTargets = make(map[types.EntityID]struct{})
	}
	p.hitTargets[id] = struct{}{}
	p.CurrentPierceCount++
	if p.CurrentPierceCount >= p.Pierce {
		p.Destroy()
	}
}

// ConsumePierce расходует заряд пирса без записи цели (срез препятствия).
// Возвращает true, если заряды исчерпаны и снаряд пора уничтожить.
func (p *Projectile) ConsumePierce() bool {
	if p.IsDestroyed {
		return false
	}
	p.CurrentPierceCount++
	return p.CurrentPierceCount >= p.Pierce
}

// Destroy уничтожает снаряд. Идемпотентен: вызывающие не обязаны проверять,
// жив ли снаряд.
func (p *Projectile) Destroy() {
	p.IsDestroyed = true
}

// HitCount — количество целей в памяти попаданий (для отладки и тестов).
func (p *Projectile) HitCount() int {
	return len(p.hitTargets)
}
