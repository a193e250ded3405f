// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Health and damage are base values; the registry scales them by the
// current wave multiplier at spawn time.
type EnemyDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Health      int     `json:"health"`
	Damage      float64 `json:"damage"`
	Speed       float64 `json:"speed"`
	SpeedCap    float64 `json:"speed_cap"`
	Radius      float64 `json:"radius"`
	ScoreChance float64 `json:"score_chance"`
	// ShieldFactor > 0 gives the enemy a shield sized as a fraction of its
	// scaled health (hexagons spawn with a 65% shield).
	ShieldFactor float64 `json:"shield_factor"`
	// MinWave gates availability in the random spawn pool.
	MinWave int `json:"min_wave"`
	// FireInterval > 0 marks a ranged type that shoots at the player.
	FireInterval     float64 `json:"fire_interval"`
	ProjectileSpeed  float64 `json:"projectile_speed"`
	ProjectileDamage float64 `json:"projectile_damage"`
	ProjectileRadius float64 `json:"projectile_radius"`
}

// defaultEnemyDefinitions is the built-in library, so the core works without
// asset files. LoadEnemyDefinitions replaces it when a JSON file is present.
func defaultEnemyDefinitions() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: "triangle", Name: "Triangle", Health: 70, Damage: 10, Speed: 140, SpeedCap: 1.8, Radius: 10, ScoreChance: 0.30, MinWave: 1},
		{ID: "shooter", Name: "Shooter", Health: 45, Damage: 8, Speed: 100, SpeedCap: 1.5, Radius: 9, ScoreChance: 0.40, MinWave: 3,
			FireInterval: 2.5, ProjectileSpeed: 260, ProjectileDamage: 8, ProjectileRadius: 4},
		{ID: "square", Name: "Square", Health: 110, Damage: 15, Speed: 110, SpeedCap: 1.6, Radius: 13, ScoreChance: 0.45, MinWave: 4},
		{ID: "pentagon", Name: "Pentagon", Health: 250, Damage: 25, Speed: 90, SpeedCap: 1.4, Radius: 16, ScoreChance: 0.65, MinWave: 7},
		{ID: "hexagon", Name: "Hexagon", Health: 575, Damage: 40, Speed: 70, SpeedCap: 1.25, Radius: 20, ScoreChance: 0.85, ShieldFactor: 0.65, MinWave: 11},
	}
}

// AvailableEnemies returns the spawn pool for a wave, ordered by MinWave:
// triangle always, shooter at wave>=3, square at wave>=4, pentagon at
// wave>=7, hexagon at wave>=11.
func AvailableEnemies(wave int) []EnemyDefinition {
	var pool []EnemyDefinition
	for _, def := range enemyOrder {
		if def.MinWave <= wave {
			pool = append(pool, def)
		}
	}
	return pool
}

// StrongestEnemy returns the late-game-most type available on a wave,
// used for the boss encounter burst.
func StrongestEnemy(wave int) (EnemyDefinition, bool) {
	pool := AvailableEnemies(wave)
	if len(pool) == 0 {
		return EnemyDefinition{}, false
	}
	strongest := pool[0]
	for _, def := range pool[1:] {
		if def.MinWave > strongest.MinWave ||
			(def.MinWave == strongest.MinWave && def.Health > strongest.Health) {
			strongest = def
		}
	}
	return strongest, true
}
