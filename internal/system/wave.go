// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"
)

// WaveSystem управляет расписанием волны: таймингом спавнов, босс-волнами
// и обнаружением завершения. Конечный автомат фаз:
// Idle -> Spawning -> Completing -> Idle.
type WaveSystem struct {
	registry   *entity.Registry
	wave       *component.Wave
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewWaveSystem(registry *entity.Registry, wave *component.Wave, dispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		registry:   registry,
		wave:       wave,
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// IsBossWave — босс-волна каждая десятая.
func IsBossWave(wave int) bool {
	return wave%config.BossWaveInterval == 0
}

// EnemyCountForWave — целевая популяция обычной волны:
// floor(40 + 2*wave + wave^1.2).
func EnemyCountForWave(wave int) int {
	return int(math.Floor(40 + 2*float64(wave) + math.Pow(float64(wave), 1.2)))
}

// SpawnIntervalForWave — интервал спавна внутри волны в секундах:
// clamp(1000 - 50*wave, 25, 500) мс.
func SpawnIntervalForWave(wave int) float64 {
	ms := utils.Clamp(
		float64(config.SpawnDelayBaseMs-config.SpawnDelayStepMs*wave),
		config.SpawnDelayMinMs,
		config.SpawnDelayMaxMs,
	)
	return ms / 1000.0
}

// StartNextWave переходит к следующей волне: инкремент счётчика, пересчёт
// множителя статов (по индексу только что завершённой волны, currentWave-1)
// и классификация босс-волны. Босс-волны спавнят половину обычной
// популяции, затем с фиксированной задержкой — босс-пачку.
func (s *WaveSystem) StartNextWave() {
	w := s.wave
	w.Number++
	w.Multiplier = NextWaveMultiplier(w.Multiplier, w.Number-1)
	w.IsBoss = IsBossWave(w.Number)

	count := EnemyCountForWave(w.Number)
	if w.IsBoss {
		count /= 2
	}
	w.TotalToSpawn = count
	w.EnemiesSpawned = 0
	w.SpawnInterval = SpawnIntervalForWave(w.Number)
	w.SpawnTimer = 0
	w.BossPending = w.IsBoss
	w.BossTimer = 0
	w.Phase = component.WaveSpawning

	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: w.Number})
}

// Update продвигает автомат волны. Таймеры — покадровые аккумуляторы:
// когда волна неактивна, они не тикают, так что отложенные спавны
// отменяются самим устройством автомата.
func (s *WaveSystem) Update(dt float64) {
	w := s.wave
	switch w.Phase {
	case component.WaveSpawning:
		if w.EnemiesSpawned < w.TotalToSpawn {
			w.SpawnTimer += dt
			if w.SpawnTimer >= w.SpawnInterval {
				w.SpawnTimer = 0
				s.spawnRandomEnemy()
				w.EnemiesSpawned++
			}
			return
		}
		if w.BossPending {
			w.BossTimer += dt
			if w.BossTimer >= config.BossSpawnDelay {
				w.BossPending = false
				s.spawnBossBurst()
			}
			return
		}
		w.Phase = component.WaveCompleting

	case component.WaveCompleting:
		if s.registry.ActiveEnemies() == 0 {
			// Зачистка: снимаем уцелевшие вражеские снаряды и
			// сигналим внешним счётчикам прогресса.
			s.registry.ClearProjectiles()
			w.Phase = component.WaveIdle
			s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: w.Number})
		}
	}
}

// IsWaveComplete — ложь, пока остаются отложенные спавны или живые враги;
// истина только когда выполнено и то и другое.
func (s *WaveSystem) IsWaveComplete() bool {
	return s.wave.Phase == component.WaveIdle
}

func (s *WaveSystem) spawnRandomEnemy() {
	pool := defs.AvailableEnemies(s.wave.Number)
	if len(pool) == 0 {
		log.Printf("wave %d: empty spawn pool", s.wave.Number)
		return
	}
	def := pool[s.rng.Intn(len(pool))]
	x, y := s.spawnPoint()
	s.registry.SpawnEnemy(def.ID, x, y)
}

// spawnBossBurst — фиксированный босс-энкаунтер: пачка сильнейшего
// доступного типа.
func (s *WaveSystem) spawnBossBurst() {
	def, ok := defs.StrongestEnemy(s.wave.Number)
	if !ok {
		log.Printf("wave %d: no boss type available", s.wave.Number)
		return
	}
	for i := 0; i < config.BossBurstCount; i++ {
		x, y := s.spawnPoint()
		s.registry.SpawnEnemy(def.ID, x, y)
	}
}

// spawnPoint — случайная точка на границе поля.
func (s *WaveSystem) spawnPoint() (float64, float64) {
	switch s.rng.Intn(4) {
	case 0:
		return s.rng.Range(0, config.ScreenWidth), 0
	case 1:
		return s.rng.Range(0, config.ScreenWidth), config.ScreenHeight
	case 2:
		return 0, s.rng.Range(0, config.ScreenHeight)
	default:
		return config.ScreenWidth, s.rng.Range(0, config.ScreenHeight)
	}
}
