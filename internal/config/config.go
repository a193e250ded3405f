// internal/config/config.go
package config

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	PlayerMaxHealth = 100
	PlayerSpeed     = 220.0
	PlayerRadius    = 14.0

	// PlayerDamageCooldown — общий кулдаун урона по игроку (секунды).
	// Один таймстемп на все источники: вражеские снаряды и прямой контакт.
	PlayerDamageCooldown = 0.5

	// Сила отбрасывания игрока. Контакт с врагом толкает сильнее снаряда.
	ProjectilePushForce = 180.0
	EnemyPushForce      = 320.0

	// Затухание импульсов отбрасывания (доля в секунду).
	KnockDamping = 6.0

	// Прирост скорости врагов за волну (до капа типа).
	EnemySpeedPerWave = 0.1

	// Интервал спавна внутри волны: clamp(1000 - 50*wave, 25, 500) мс.
	SpawnDelayBaseMs = 1000
	SpawnDelayStepMs = 50
	SpawnDelayMinMs  = 25
	SpawnDelayMaxMs  = 500

	// Босс-волны: каждая десятая, половина обычной популяции,
	// затем с фиксированной задержкой — пачка сильнейшего доступного типа.
	BossWaveInterval = 10
	BossSpawnDelay   = 2.0
	BossBurstCount   = 5

	ProjectileSpeed  = 520.0 // pixels per second
	ProjectileRadius = 5.0   // pixels
	FireCooldown     = 0.22  // автострельба игрока (секунды)

	BaseProjectileDamage    = 12.0
	BaseProjectileKnockback = 90.0
)
