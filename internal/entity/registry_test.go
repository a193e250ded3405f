package entity

import (
	"math"
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/physics"
)

func newTestRegistry(waveNumber int, multiplier float64) (*Registry, *component.Wave) {
	wave := component.NewWave()
	wave.Number = waveNumber
	wave.Multiplier = multiplier
	return NewRegistry(wave, &physics.HandleSource{}), wave
}

func TestSpawnEnemyIDsMonotonic(t *testing.T) {
	r, _ := newTestRegistry(1, 1.0)
	a := r.SpawnEnemy("triangle", 0, 0)
	b := r.SpawnEnemy("triangle", 0, 0)
	c := r.SpawnEnemy("triangle", 0, 0)
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Fatalf("ids not strictly increasing: %d %d %d", a.ID, b.ID, c.ID)
	}

	// Удаление не освобождает идентификаторы для повторной выдачи.
	b.Destroy()
	r.Update(0, 0, 0)
	d := r.SpawnEnemy("triangle", 0, 0)
	if d.ID <= c.ID {
		t.Fatalf("id after removal = %d, want > %d", d.ID, c.ID)
	}
}

func TestSpawnEnemyScalesByMultiplier(t *testing.T) {
	r, _ := newTestRegistry(5, 2.5)
	e := r.SpawnEnemy("triangle", 0, 0)

	wantHealth := int(70 * 2.5)
	if e.Health != wantHealth || e.MaxHealth != wantHealth {
		t.Fatalf("health = %d/%d, want %d/%d", e.Health, e.MaxHealth, wantHealth, wantHealth)
	}
	if e.Damage != 10*2.5 {
		t.Fatalf("damage = %v, want %v", e.Damage, 10*2.5)
	}
	// Скорость масштабируется волной, а не множителем: 1 + 5*0.1 = 1.5 < 1.8.
	if math.Abs(e.Speed-140*1.5) > 1e-9 {
		t.Fatalf("speed = %v, want %v", e.Speed, 140*1.5)
	}
}

func TestSpawnEnemySpeedCap(t *testing.T) {
	r, _ := newTestRegistry(30, 1.0)
	e := r.SpawnEnemy("triangle", 0, 0)
	// 1 + 30*0.1 = 4.0, но тип ограничен потолком 1.8.
	if math.Abs(e.Speed-140*1.8) > 1e-9 {
		t.Fatalf("speed = %v, want capped %v", e.Speed, 140*1.8)
	}
}

func TestSpawnEnemyFloorsHealthAtOne(t *testing.T) {
	r, _ := newTestRegistry(1, 0.001)
	e := r.SpawnEnemy("triangle", 0, 0)
	if e.Health != 1 {
		t.Fatalf("health = %d, want floor of 1", e.Health)
	}
}

func TestSpawnHexagonShield(t *testing.T) {
	r, _ := newTestRegistry(11, 2.0)
	e := r.SpawnEnemy("hexagon", 0, 0)
	wantHealth := int(575 * 2.0)
	wantShield := int(float64(wantHealth) * 0.65)
	if e.Shield != wantShield {
		t.Fatalf("shield = %d, want %d", e.Shield, wantShield)
	}
}

func TestSpawnUnknownTypeReturnsNil(t *testing.T) {
	r, _ := newTestRegistry(1, 1.0)
	if e := r.SpawnEnemy("octagon", 0, 0); e != nil {
		t.Fatalf("unknown type spawned %+v, want nil", e)
	}
	if r.ActiveEnemies() != 0 {
		t.Fatalf("registry not empty after failed spawn: %d", r.ActiveEnemies())
	}
}

func TestUpdateSweepsDestroyedEnemies(t *testing.T) {
	r, _ := newTestRegistry(1, 1.0)
	var enemies []*component.Enemy
	for i := 0; i < 5; i++ {
		enemies = append(enemies, r.SpawnEnemy("triangle", float64(i)*50, 0))
	}

	// Несколько уничтоженных подряд: обратный обход не должен пропускать.
	enemies[1].Destroy()
	enemies[2].Destroy()
	enemies[4].Destroy()
	r.Update(0, 0, 0)

	if r.ActiveEnemies() != 2 {
		t.Fatalf("active enemies = %d, want 2", r.ActiveEnemies())
	}
	for _, e := range r.Enemies() {
		if e.IsDestroyed {
			t.Fatalf("destroyed enemy %d survived the sweep", e.ID)
		}
	}
}

func TestBodyLookupInvalidatedByDestroy(t *testing.T) {
	r, _ := newTestRegistry(1, 1.0)
	e := r.SpawnEnemy("triangle", 0, 0)
	if r.EnemyByBody(e.Body) != e {
		t.Fatal("live enemy not found by body")
	}

	// Уничтожение скрывает сущность из поиска ещё до развёртки.
	e.Destroy()
	if r.EnemyByBody(e.Body) != nil {
		t.Fatal("destroyed enemy still resolvable by body")
	}
	r.Update(0, 0, 0)
	if r.EnemyByBody(e.Body) != nil {
		t.Fatal("swept enemy still resolvable by body")
	}
}

func TestEnemyProjectileCulledOutOfBounds(t *testing.T) {
	r, _ := newTestRegistry(3, 1.0)
	def := defs.EnemyLibrary["shooter"]
	p := r.SpawnEnemyProjectile(0, 0, math.Pi, def) // летит влево, за край поля

	for i := 0; i < 200 && !p.IsDestroyed; i++ {
		r.Update(1.0/60.0, 600, 450)
	}
	if !p.IsDestroyed {
		t.Fatal("out-of-bounds projectile never destroyed")
	}
	if r.ProjectileByBody(p.Body) != nil {
		t.Fatal("culled projectile still resolvable by body")
	}
	if len(r.Projectiles()) != 0 {
		t.Fatalf("projectile list not empty: %d", len(r.Projectiles()))
	}
}

func TestEnemyProjectileScalesWithMultiplier(t *testing.T) {
	r, _ := newTestRegistry(5, 3.0)
	def := defs.EnemyLibrary["shooter"]
	p := r.SpawnEnemyProjectile(100, 100, 0, def)
	if p.Damage != def.ProjectileDamage*3.0 {
		t.Fatalf("projectile damage = %v, want %v", p.Damage, def.ProjectileDamage*3.0)
	}
	if p.Pierce != 1 {
		t.Fatalf("enemy projectile pierce = %d, want 1", p.Pierce)
	}
}

func TestReadyShootersRearm(t *testing.T) {
	r, _ := newTestRegistry(3, 1.0)
	e := r.SpawnEnemy("shooter", 0, 0)

	if got := r.ReadyShooters(); len(got) != 0 {
		t.Fatalf("shooter ready before its timer elapsed: %d", len(got))
	}
	r.Update(e.FireInterval, 600, 450)
	got := r.ReadyShooters()
	if len(got) != 1 || got[0] != e {
		t.Fatalf("ready shooters = %v, want the spawned one", got)
	}
	// Выстрел перезаряжает таймер.
	if got = r.ReadyShooters(); len(got) != 0 {
		t.Fatalf("shooter ready twice without reload: %d", len(got))
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	r, _ := newTestRegistry(3, 1.0)
	r.SpawnEnemy("triangle", 0, 0)
	r.SpawnEnemy("triangle", 50, 0)
	def := defs.EnemyLibrary["shooter"]
	r.SpawnEnemyProjectile(0, 0, 0, def)

	r.Clear()
	if r.ActiveEnemies() != 0 || len(r.Projectiles()) != 0 {
		t.Fatalf("registry not empty after Clear: %d enemies, %d projectiles",
			r.ActiveEnemies(), len(r.Projectiles()))
	}
}
