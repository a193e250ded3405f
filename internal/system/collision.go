// internal/system/collision.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/physics"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// CollisionSystem превращает сырые попарные контакты от физики в
// семантические исходы боя: урон, отбрасывание, уничтожение, очки.
// Резолв однопоточный; порядок определяется порядком доставки событий
// в пределах кадра, без переупорядочивания.
type CollisionSystem struct {
	registry    *entity.Registry
	playerShots *entity.ProjectilePool
	player      *component.Player
	effects     EffectSource
	impulses    physics.ImpulseApplier
	dispatcher  *event.Dispatcher
	rng         *utils.PRNGService
}

func NewCollisionSystem(
	registry *entity.Registry,
	playerShots *entity.ProjectilePool,
	player *component.Player,
	effects EffectSource,
	impulses physics.ImpulseApplier,
	dispatcher *event.Dispatcher,
	rng *utils.PRNGService,
) *CollisionSystem {
	return &CollisionSystem{
		registry:    registry,
		playerShots: playerShots,
		player:      player,
		effects:     effects,
		impulses:    impulses,
		dispatcher:  dispatcher,
		rng:         rng,
	}
}

// HandleOverlap резолвит неблокирующий контакт пары тел.
// Любая сторона без живой сущности — молчаливый отказ от резолва:
// промахи поиска не распространяются и не фатальны.
func (s *CollisionSystem) HandleOverlap(c physics.Overlap, now float64) {
	if s.tryResolve(c.A, c.B, now) {
		return
	}
	s.tryResolve(c.B, c.A, now)
}

func (s *CollisionSystem) tryResolve(a, b types.BodyID, now float64) bool {
	if shot := s.playerShots.ByBody(a); shot != nil {
		if enemy := s.registry.EnemyByBody(b); enemy != nil {
			s.resolveShotEnemy(shot, enemy)
			return true
		}
		return false
	}
	if shot := s.registry.ProjectileByBody(a); shot != nil {
		if b == s.player.Body {
			s.resolveEnemyShotPlayer(shot, now)
			return true
		}
		return false
	}
	if a == s.player.Body {
		if enemy := s.registry.EnemyByBody(b); enemy != nil {
			s.resolvePlayerEnemy(enemy, now)
			return true
		}
	}
	return false
}

// HandleSolidContact — блокирующий контакт. Несёт только телесность
// игрока, врагов и препятствий: физика уже применила отклик, боевой
// логики на этом пути нет.
func (s *CollisionSystem) HandleSolidContact(c physics.SolidContact) {}

// resolveShotEnemy — снаряд игрока против врага.
func (s *CollisionSystem) resolveShotEnemy(p *component.Projectile, e *component.Enemy) {
	// Повторная проверка: обе сущности могли погибнуть раньше в этом же
	// пакете событий.
	if p.IsDestroyed || e.IsDestroyed {
		return
	}
	// Дедупликация пирса: один снаряд не бьёт одного врага дважды.
	if !p.CanHit(e.ID) {
		return
	}

	s.effects.OnProjectileHit(p, e)

	damage := FinalDamage(s.effects, p.Damage, p.DamageMultiplier)
	died := e.TakeDamage(damage)

	// Запись попадания может уничтожить снаряд по правилу пирса.
	p.RecordHit(e.ID)

	if kb := KnockbackStrength(s.effects, p.Knockback); kb > 0 && !e.IsDestroyed {
		angle := utils.AngleTo(p.X, p.Y, e.X, e.Y)
		s.impulses.ApplyImpulse(e.Body, angle, kb)
	}

	if died {
		s.onEnemyKilled(e)
	}
}

// resolveEnemyShotPlayer — вражеский снаряд против игрока.
// Кулдаун общий для всех источников урона по игроку; внутри окна контакт
// игнорируется целиком, включая уничтожение снаряда: для последовательных
// попаданий нужны новые снаряды.
func (s *CollisionSystem) resolveEnemyShotPlayer(p *component.Projectile, now float64) {
	if p.IsDestroyed {
		return
	}
	if !s.player.CanTakeDamage(now) {
		return
	}

	s.damagePlayer(p.Damage*p.DamageMultiplier, now)
	p.Destroy()

	angle := utils.AngleTo(p.X, p.Y, s.player.X, s.player.Y)
	s.impulses.ApplyImpulse(s.player.Body, angle, config.ProjectilePushForce)
}

// resolvePlayerEnemy — прямой контакт игрока с врагом.
func (s *CollisionSystem) resolvePlayerEnemy(e *component.Enemy, now float64) {
	if e.IsDestroyed {
		return
	}
	if !s.player.CanTakeDamage(now) {
		return
	}

	dealt := s.damagePlayer(e.Damage, now)

	// Шипы: отражаем долю полученного урона обратно на атакующего.
	if !e.IsDestroyed && s.effects.HasEffect("thorns") {
		reflected := int(math.Ceil(float64(dealt) * s.effects.GetEffectValue("thorns")))
		if e.TakeDamage(reflected) {
			s.onEnemyKilled(e)
		}
	}

	// Контактный толчок сильнее, чем от снаряда.
	angle := utils.AngleTo(e.X, e.Y, s.player.X, s.player.Y)
	s.impulses.ApplyImpulse(s.player.Body, angle, config.EnemyPushForce)
}

// damagePlayer применяет урон по игроку (с учётом брони), сдвигает
// таймстемп кулдауна и возвращает фактически применённое значение.
func (s *CollisionSystem) damagePlayer(raw float64, now float64) int {
	if armor := s.effects.GetEffectValue("armor"); armor > 0 {
		if armor > 1 {
			armor = 1
		}
		raw *= 1.0 - armor
	}
	damage := PlayerDamage(raw)
	s.player.ApplyDamage(damage, now)
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: damage})
	return damage
}

// onEnemyKilled — общий исход смерти врага: сигнал счётчику убийств,
// вероятностное очко, внешний хук убийства.
func (s *CollisionSystem) onEnemyKilled(e *component.Enemy) {
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: e})
	if s.rng.Chance(e.ScoreChance) {
		s.dispatcher.Dispatch(event.Event{Type: event.PointAwarded, Data: e})
	}
	s.effects.OnEnemyKill(e)
}

// ResolveObstacleHit — предикатная фаза контакта снаряда с препятствием.
// Решение о блокировке всегда Pass: вместо жёсткой остановки снаряд
// уничтожается. Все побочные эффекты отложены в Effects и применяются
// хостом после чтения решения (process-then-commit).
func (s *CollisionSystem) ResolveObstacleHit(body types.BodyID) physics.ObstacleResolution {
	p := s.playerShots.ByBody(body)
	if p == nil {
		p = s.registry.ProjectileByBody(body)
	}
	if p == nil || p.IsDestroyed {
		return physics.ObstacleResolution{Decision: physics.Pass}
	}

	var fx []func()
	if p.OnObstacleHit != nil {
		fx = append(fx, p.OnObstacleHit)
	}

	switch {
	case p.CanCutTiles:
		// Срез тайла: расходуем заряд пирса, уничтожаем только по
		// исчерпанию; снаряд визуально продолжает полёт.
		proj := p
		fx = append(fx, func() {
			if proj.ConsumePierce() {
				proj.Destroy()
			}
		})
	case p.Owner == component.OwnerPlayer && s.effects.HasEffect("ricochet"):
		// Рикошет отменяет уничтожение; отскок применит физика.
	default:
		proj := p
		fx = append(fx, proj.Destroy)
	}

	return physics.ObstacleResolution{Decision: physics.Pass, Effects: fx}
}
