// internal/component/wave.go
package component

// WavePhase — фаза конечного автомата волны.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveCompleting
)

// Wave хранит состояние прогрессии волн.
// Multiplier следует кусочной формуле баланса и пересчитывается
// ровно один раз на переходе волны.
type Wave struct {
	Number     int
	Multiplier float64
	Phase      WavePhase

	EnemiesSpawned int
	TotalToSpawn   int

	SpawnTimer    float64
	SpawnInterval float64 // секунды между спавнами внутри волны

	IsBoss      bool
	BossPending bool
	BossTimer   float64
}

// NewWave — начальное состояние до первой волны.
func NewWave() *Wave {
	return &Wave{Multiplier: 1.0}
}

// Active — идёт ли волна (спавн или ожидание зачистки).
func (w *Wave) Active() bool {
	return w.Phase != WaveIdle
}

// SpawnFinished — все спавны волны выполнены, включая босс-пачку.
func (w *Wave) SpawnFinished() bool {
	return w.EnemiesSpawned >= w.TotalToSpawn && !w.BossPending
}
