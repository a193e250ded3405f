// internal/effects/effects.go
// Пакет effects реализует коллаборатора модификаторов: числовое применение
// купленных апгрейдов к боевым статам и именованные эффекты (thorns,
// ricochet, armor, lifesteal, regen). Выбор апгрейдов и их UI — вне ядра.
package effects

import (
	"log"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
)

// Manager хранит применённые апгрейды и отвечает на запросы боевых систем.
type Manager struct {
	stacks map[string]int // id апгрейда -> число стаков

	// Игрок нужен эффектам, возвращающим здоровье (lifesteal, regen).
	player *component.Player

	regenCarry float64
}

// NewManager создаёт менеджер без апгрейдов.
func NewManager(player *component.Player) *Manager {
	return &Manager{
		stacks: make(map[string]int),
		player: player,
	}
}

// Apply применяет апгрейд по ID. Возвращает false для неизвестного ID
// или исчерпанного лимита стаков.
func (m *Manager) Apply(upgradeID string) bool {
	def, ok := defs.UpgradeLibrary[upgradeID]
	if !ok {
		log.Printf("effects: unknown upgrade %q", upgradeID)
		return false
	}
	current := m.stacks[upgradeID]
	if current > 0 && !def.Stackable {
		return false
	}
	if def.MaxStacks > 0 && current >= def.MaxStacks {
		return false
	}
	m.stacks[upgradeID] = current + 1
	return true
}

// Stacks — текущее число стаков апгрейда.
func (m *Manager) Stacks(upgradeID string) int {
	return m.stacks[upgradeID]
}

// ApplyModifiers применяет стат-модификаторы к базовому значению:
// сначала суммируются плоские прибавки, затем процентные множители.
// Категория "attack" действует на все виды атак, поэтому её модификаторы
// входят и в запросы категории "bullet".
func (m *Manager) ApplyModifiers(category, stat string, base float64) float64 {
	flat := 0.0
	mult := 1.0
	for id, stacks := range m.stacks {
		def, ok := defs.UpgradeLibrary[id]
		if !ok || def.Type != defs.UpgradeStatModifier || def.Stat != stat {
			continue
		}
		if def.Target != category && def.Target != "attack" {
			continue
		}
		if def.IsMultiplier {
			mult += def.Value * float64(stacks)
		} else {
			flat += def.Value * float64(stacks)
		}
	}
	return (base + flat) * mult
}

// HasEffect — активен ли именованный эффект.
func (m *Manager) HasEffect(name string) bool {
	for id, stacks := range m.stacks {
		if stacks <= 0 {
			continue
		}
		def, ok := defs.UpgradeLibrary[id]
		if ok && def.Type == defs.UpgradeEffect && def.Effect == name {
			return true
		}
	}
	return false
}

// GetEffectValue — суммарная величина эффекта по всем стакам.
func (m *Manager) GetEffectValue(name string) float64 {
	total := 0.0
	for id, stacks := range m.stacks {
		def, ok := defs.UpgradeLibrary[id]
		if ok && def.Type == defs.UpgradeEffect && def.Effect == name {
			total += def.EffectValue * float64(stacks)
		}
	}
	return total
}

// OnProjectileHit — хук попадания снаряда игрока по врагу.
// Lifesteal лечит долю нанесённого урона.
func (m *Manager) OnProjectileHit(p *component.Projectile, e *component.Enemy) {
	steal := m.GetEffectValue("lifesteal")
	if steal <= 0 || m.player == nil {
		return
	}
	damage := math.Ceil(m.ApplyModifiers("bullet", "damage", p.Damage) * p.DamageMultiplier)
	m.player.Heal(int(math.Ceil(damage * steal)))
}

// OnEnemyKill — хук убийства врага. Точка расширения для эффектов вида
// «взрыв при убийстве»; базовый менеджер здесь ничего не делает.
func (m *Manager) OnEnemyKill(e *component.Enemy) {}

// Update продвигает эффекты со временем: regen возвращает здоровье
// с дробным накоплением между кадрами.
func (m *Manager) Update(dt float64) {
	regen := m.GetEffectValue("regen")
	if regen <= 0 || m.player == nil || m.player.IsDead() {
		return
	}
	m.regenCarry += regen * dt
	if m.regenCarry >= 1 {
		whole := math.Floor(m.regenCarry)
		m.player.Heal(int(whole))
		m.regenCarry -= whole
	}
}
