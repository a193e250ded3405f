// internal/app/game.go
package app

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/effects"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/physics"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// Game — явно владеемое состояние сессии: реестр сущностей, боевые
// системы и счётчики прогресса. Передаётся по ссылке в системы вместо
// процессных синглтонов; всё состояние живёт в памяти и умирает с сессией.
type Game struct {
	Player      *component.Player
	WaveState   *component.Wave
	Registry    *entity.Registry
	PlayerShots *entity.ProjectilePool

	WaveSystem      *system.WaveSystem
	CollisionSystem *system.CollisionSystem
	ShooterSystem   *system.ShooterSystem
	Effects         *effects.Manager
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Handles         *physics.HandleSource

	// Очереди контактов текущего кадра: резолв строго до развёртки
	// сущностей, в порядке доставки.
	pendingOverlaps []physics.Overlap
	pendingSolids   []physics.SolidContact

	gameTime float64
	score    int
	kills    int
	fireTime float64
}

// GameEventListener переводит боевые события в счётчики сессии.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.game.kills++
	case event.PointAwarded:
		l.game.score++
	}
}

// NewGame собирает сессию. Нулевой сид — недетерминированный рандом.
func NewGame(seed int64) *Game {
	handles := &physics.HandleSource{}
	wave := component.NewWave()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	player := component.NewPlayer(handles.NewBody(), config.ScreenWidth/2, config.ScreenHeight/2)
	registry := entity.NewRegistry(wave, handles)
	shots := entity.NewProjectilePool(handles)
	fx := effects.NewManager(player)

	g := &Game{
		Player:          player,
		WaveState:       wave,
		Registry:        registry,
		PlayerShots:     shots,
		Effects:         fx,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Handles:         handles,
	}
	g.WaveSystem = system.NewWaveSystem(registry, wave, dispatcher, rng)
	g.CollisionSystem = system.NewCollisionSystem(registry, shots, player, fx, g, dispatcher, rng)
	g.ShooterSystem = system.NewShooterSystem(registry, player)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.PointAwarded, listener)
	return g
}

// QueueOverlap ставит контакт в очередь кадра. Вызывается физическим
// коллаборатором по мере обнаружения пересечений.
func (g *Game) QueueOverlap(a, b types.BodyID) {
	g.pendingOverlaps = append(g.pendingOverlaps, physics.Overlap{A: a, B: b})
}

// QueueSolidContact ставит блокирующий контакт в очередь кадра.
func (g *Game) QueueSolidContact(a, b types.BodyID) {
	g.pendingSolids = append(g.pendingSolids, physics.SolidContact{A: a, B: b})
}

// ApplyImpulse реализует physics.ImpulseApplier: толчок применяется
// к остаточной скорости тела и гасится при развёртке.
func (g *Game) ApplyImpulse(body types.BodyID, angle, magnitude float64) {
	vx := math.Cos(angle) * magnitude
	vy := math.Sin(angle) * magnitude
	if body == g.Player.Body {
		g.Player.KickVX += vx
		g.Player.KickVY += vy
		return
	}
	if e := g.Registry.EnemyByBody(body); e != nil {
		e.KickVX += vx
		e.KickVY += vy
	}
}

// Update — один кадр сессии: сначала резолв всех накопленных контактов,
// затем эффекты, расписание волны, стрельба врагов и развёртка списков.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime

	for _, c := range g.pendingOverlaps {
		g.CollisionSystem.HandleOverlap(c, g.gameTime)
	}
	for _, c := range g.pendingSolids {
		g.CollisionSystem.HandleSolidContact(c)
	}
	g.pendingOverlaps = g.pendingOverlaps[:0]
	g.pendingSolids = g.pendingSolids[:0]

	g.Effects.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.ShooterSystem.Update(deltaTime)

	g.Registry.Update(deltaTime, g.Player.X, g.Player.Y)
	g.PlayerShots.Update(deltaTime)

	// Интеграция и затухание толчка игрока.
	g.Player.X += g.Player.KickVX * deltaTime
	g.Player.Y += g.Player.KickVY * deltaTime
	damp := 1.0 - config.KnockDamping*deltaTime
	if damp < 0 {
		damp = 0
	}
	g.Player.KickVX *= damp
	g.Player.KickVY *= damp

	g.fireTime -= deltaTime
}

// FireAt — выстрел игрока в направлении точки (tx, ty) с учётом
// перезарядки и апгрейдов оружия.
func (g *Game) FireAt(tx, ty float64) *component.Projectile {
	if g.fireTime > 0 {
		return nil
	}
	g.fireTime = config.FireCooldown

	pierce := int(g.Effects.ApplyModifiers("bullet", "pierce", 1))
	return g.PlayerShots.Spawn(entity.SpawnSpec{
		X:                g.Player.X,
		Y:                g.Player.Y,
		Angle:            utils.AngleTo(g.Player.X, g.Player.Y, tx, ty),
		Speed:            config.ProjectileSpeed,
		Damage:           config.BaseProjectileDamage,
		DamageMultiplier: 1.0,
		Knockback:        config.BaseProjectileKnockback,
		Pierce:           pierce,
	})
}

// SpawnEnemy — внешний API спавна: мягкий отказ (nil) для неизвестного
// типа; вызывающий не должен трогать счётчики при nil.
func (g *Game) SpawnEnemy(defID string, x, y float64) *component.Enemy {
	return g.Registry.SpawnEnemy(defID, x, y)
}

// StartWave запускает следующую волну.
func (g *Game) StartWave() {
	g.WaveSystem.StartNextWave()
}

// IsWaveComplete — завершена ли текущая волна.
func (g *Game) IsWaveComplete() bool {
	return g.WaveSystem.IsWaveComplete()
}

// Restart сбрасывает сессию: списки сущностей, волну и счётчики.
func (g *Game) Restart() {
	g.Registry.Clear()
	g.PlayerShots.Clear()
	*g.WaveState = *component.NewWave()
	*g.Player = *component.NewPlayer(g.Player.Body, config.ScreenWidth/2, config.ScreenHeight/2)
	g.score = 0
	g.kills = 0
	g.gameTime = 0
	g.fireTime = 0
	g.pendingOverlaps = g.pendingOverlaps[:0]
	g.pendingSolids = g.pendingSolids[:0]
}

// Score — набранные очки.
func (g *Game) Score() int {
	return g.score
}

// Kills — счётчик убийств.
func (g *Game) Kills() int {
	return g.kills
}

// GameTime — игровое время сессии (секунды).
func (g *Game) GameTime() float64 {
	return g.gameTime
}
