// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Волна началась (Data: номер волны)
	WaveCompleted EventType = "WaveCompleted" // Волна зачищена (Data: номер волны)
	EnemyKilled   EventType = "EnemyKilled"   // Враг убит (Data: *component.Enemy)
	PointAwarded  EventType = "PointAwarded"  // Начислено очко за убийство
	PlayerDamaged EventType = "PlayerDamaged" // Игрок получил урон (Data: int)
)
