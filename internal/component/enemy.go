package component

import "go-arena-survival/internal/types"

// Enemy представляет вражескую сущность.
// Боевые статы фиксируются при спавне после применения волнового множителя;
// MaxHealth после этого не меняется.
type Enemy struct {
	ID    types.EntityID
	Body  types.BodyID
	DefID string // ID из enemies.json

	X, Y float64

	Health    int
	MaxHealth int
	Shield    int // щит гексагонов, принимает урон раньше здоровья

	Damage      float64
	Speed       float64
	Radius      float64
	ScoreChance float64 // вероятность очка за убийство (0..1)

	// Остаточный импульс отбрасывания, гасится реестром.
	KickVX, KickVY float64

	// Таймер стрельбы для дальнобойных типов (FireInterval > 0 в определении).
	FireInterval float64
	FireTimer    float64

	IsDestroyed bool
}

// TakeDamage наносит урон с учётом щита и возвращает true, если враг погиб.
// Уничтоженный враг урон не принимает: флаг проверяется здесь, а не только
// на входе в резолвер, потому что враг мог погибнуть раньше в этом же кадре.
func (e *Enemy) TakeDamage(damage int) bool {
	if e.IsDestroyed || damage <= 0 {
		return false
	}
	if e.Shield > 0 {
		if damage < e.Shield {
			e.Shield -= damage
			return false
		}
		damage -= e.Shield
		e.Shield = 0
		if damage == 0 {
			return false
		}
	}
	e.Health -= damage
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
	if e.Health <= 0 {
		e.Health = 0
		e.IsDestroyed = true
		return true
	}
	return false
}

// Destroy переводит врага в терминальное состояние. Повторные вызовы — no-op.
func (e *Enemy) Destroy() {
	e.IsDestroyed = true
}
