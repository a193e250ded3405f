// internal/system/damage.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
)

// EffectSource — интерфейс коллаборатора модификаторов и эффектов.
// Определён на стороне потребителя, чтобы боевые системы не зависели
// от конкретной реализации апгрейдов.
type EffectSource interface {
	ApplyModifiers(category, stat string, base float64) float64
	HasEffect(name string) bool
	GetEffectValue(name string) float64
	OnProjectileHit(p *component.Projectile, e *component.Enemy)
	OnEnemyKill(e *component.Enemy)
}

// FinalDamage — конвейер урона снаряда:
// ceil(applyModifiers("bullet", "damage", base) * multiplier).
// Округление всегда вверх: дробное масштабирование апгрейдов не должно
// давать удары с нулевым эффектом.
func FinalDamage(effects EffectSource, base, multiplier float64) int {
	return int(math.Ceil(effects.ApplyModifiers("bullet", "damage", base) * multiplier))
}

// KnockbackStrength — модифицированная сила отбрасывания.
// Не округляется: применяется как непрерывная скорость.
func KnockbackStrength(effects EffectSource, base float64) float64 {
	return effects.ApplyModifiers("attack", "knockback", base)
}

// PlayerDamage — урон по игроку: целочисленный потолок сырого значения.
// Урон врагов и шипов через модификаторы не проходит.
func PlayerDamage(raw float64) int {
	return int(math.Ceil(raw))
}
