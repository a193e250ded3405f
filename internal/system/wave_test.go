package system

import (
	"math"
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/physics"
	"go-arena-survival/internal/utils"
)

func newWaveFixture(t *testing.T) (*WaveSystem, *component.Wave, *entity.Registry, *event.Dispatcher) {
	t.Helper()
	wave := component.NewWave()
	handles := &physics.HandleSource{}
	registry := entity.NewRegistry(wave, handles)
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(registry, wave, dispatcher, utils.NewPRNGService(42))
	return ws, wave, registry, dispatcher
}

func TestIsBossWave(t *testing.T) {
	cases := []struct {
		wave int
		want bool
	}{
		{0, true},
		{9, false},
		{10, true},
		{19, false},
		{20, true},
		{100, true},
	}
	for _, c := range cases {
		if got := IsBossWave(c.wave); got != c.want {
			t.Fatalf("IsBossWave(%d) = %v, want %v", c.wave, got, c.want)
		}
	}
}

func TestEnemyCountForWave(t *testing.T) {
	cases := []struct {
		wave int
		want int
	}{
		{1, int(math.Floor(40 + 2 + 1))},
		{10, int(math.Floor(40 + 20 + math.Pow(10, 1.2)))},
		{20, int(math.Floor(40 + 40 + math.Pow(20, 1.2)))},
	}
	for _, c := range cases {
		if got := EnemyCountForWave(c.wave); got != c.want {
			t.Fatalf("EnemyCountForWave(%d) = %d, want %d", c.wave, got, c.want)
		}
	}
}

func TestSpawnIntervalClamps(t *testing.T) {
	cases := []struct {
		wave int
		want float64 // секунды
	}{
		{1, 0.5},   // 950 мс упирается в потолок 500
		{10, 0.5},  // ровно на границе
		{15, 0.25}, // 1000 - 750
		{19, 0.05},
		{30, 0.025}, // пол 25 мс
	}
	for _, c := range cases {
		if got := SpawnIntervalForWave(c.wave); got != c.want {
			t.Fatalf("SpawnIntervalForWave(%d) = %v, want %v", c.wave, got, c.want)
		}
	}
}

func TestWaveSpawnsGatedPool(t *testing.T) {
	ws, wave, registry, _ := newWaveFixture(t)
	ws.StartNextWave()

	if wave.Number != 1 {
		t.Fatalf("wave number = %d, want 1", wave.Number)
	}
	if wave.Multiplier != 1.0 {
		t.Fatalf("wave 1 multiplier = %v, want base 1.0", wave.Multiplier)
	}
	if wave.IsBoss {
		t.Fatal("wave 1 must not be a boss wave")
	}

	for i := 0; i < wave.TotalToSpawn; i++ {
		ws.Update(wave.SpawnInterval)
	}
	if registry.ActiveEnemies() != wave.TotalToSpawn {
		t.Fatalf("spawned %d enemies, want %d", registry.ActiveEnemies(), wave.TotalToSpawn)
	}
	// На первой волне доступны только треугольники.
	for _, e := range registry.Enemies() {
		if e.DefID != "triangle" {
			t.Fatalf("wave 1 spawned %q, want only triangle", e.DefID)
		}
	}
}

func TestWaveCompletionRequiresBothConditions(t *testing.T) {
	ws, wave, registry, dispatcher := newWaveFixture(t)

	completed := 0
	dispatcher.Subscribe(event.WaveCompleted, event.ListenerFunc(func(e event.Event) {
		completed++
	}))

	ws.StartNextWave()
	if ws.IsWaveComplete() {
		t.Fatal("wave must not be complete while spawns are pending")
	}

	// Убиваем врагов по мере спавна: волна всё ещё не завершена,
	// пока остаются отложенные спавны.
	for i := 0; i < wave.TotalToSpawn; i++ {
		ws.Update(wave.SpawnInterval)
		for _, e := range registry.Enemies() {
			e.Destroy()
		}
		registry.Update(0, 0, 0)
		if i < wave.TotalToSpawn-1 && ws.IsWaveComplete() {
			t.Fatalf("wave complete after %d of %d spawns", i+1, wave.TotalToSpawn)
		}
	}

	// Спавны закончились, врагов нет: переходы Spawning -> Completing -> Idle.
	ws.Update(0)
	ws.Update(0)
	if !ws.IsWaveComplete() {
		t.Fatal("wave must be complete once spawning finished and no enemies remain")
	}
	if completed != 1 {
		t.Fatalf("WaveCompleted dispatched %d times, want 1", completed)
	}
}

func TestWaveCompletionClearsEnemyProjectiles(t *testing.T) {
	ws, wave, registry, _ := newWaveFixture(t)
	ws.StartNextWave()

	for i := 0; i < wave.TotalToSpawn; i++ {
		ws.Update(wave.SpawnInterval)
	}
	// Уцелевший вражеский снаряд должен быть снят при завершении волны.
	shooter := registry.SpawnEnemy("shooter", 100, 100)
	if shooter == nil {
		t.Fatal("spawn shooter failed")
	}
	def, ok := defs.EnemyLibrary["shooter"]
	if !ok {
		t.Fatal("shooter definition not found")
	}
	registry.SpawnEnemyProjectile(100, 100, 0, def)

	for _, e := range registry.Enemies() {
		e.Destroy()
	}
	registry.Update(0, 0, 0)

	ws.Update(0)
	ws.Update(0)
	if !ws.IsWaveComplete() {
		t.Fatal("wave must be complete")
	}
	if got := len(registry.Projectiles()); got != 0 {
		t.Fatalf("enemy projectiles after completion = %d, want 0", got)
	}
}

func TestBossWaveSchedule(t *testing.T) {
	ws, wave, registry, _ := newWaveFixture(t)

	// Перематываем прогрессию к десятой волне.
	for i := 0; i < 9; i++ {
		ws.StartNextWave()
		wave.EnemiesSpawned = wave.TotalToSpawn
		wave.BossPending = false
		wave.Phase = component.WaveIdle
	}

	ws.StartNextWave()
	if !wave.IsBoss {
		t.Fatalf("wave %d must be a boss wave", wave.Number)
	}
	wantCount := EnemyCountForWave(10) / 2
	if wave.TotalToSpawn != wantCount {
		t.Fatalf("boss wave population = %d, want %d", wave.TotalToSpawn, wantCount)
	}

	for i := 0; i < wave.TotalToSpawn; i++ {
		ws.Update(wave.SpawnInterval)
	}
	if wave.SpawnFinished() {
		t.Fatal("boss burst still pending, spawn must not be finished")
	}

	before := registry.ActiveEnemies()
	ws.Update(1.0)
	if registry.ActiveEnemies() != before {
		t.Fatal("boss burst fired before its fixed delay")
	}
	ws.Update(1.0)
	burst := registry.ActiveEnemies() - before
	if burst <= 0 {
		t.Fatal("boss burst did not spawn")
	}
	// На десятой волне сильнейший доступный тип — пентагон.
	strongest := registry.Enemies()[registry.ActiveEnemies()-1]
	if strongest.DefID != "pentagon" {
		t.Fatalf("boss burst type = %q, want pentagon", strongest.DefID)
	}
	if !wave.SpawnFinished() {
		t.Fatal("spawning must be finished after the boss burst")
	}
}
