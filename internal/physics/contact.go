// internal/physics/contact.go
// Пакет physics описывает границу с физическим коллаборатором.
// Само обнаружение коллизий (broad/narrow phase) живёт на стороне хоста;
// ядро только потребляет попарные события контакта.
package physics

import "go-arena-survival/internal/types"

// Overlap — неблокирующий контакт двух тел.
// Порядок доставки в пределах кадра определяет порядок резолва.
type Overlap struct {
	A, B types.BodyID
}

// SolidContact — блокирующий контакт. Несёт только «телесность»
// игрока/врагов/препятствий, без боевой логики.
type SolidContact struct {
	A, B types.BodyID
}

// BlockDecision — вердикт предикатной фазы обработки препятствия.
type BlockDecision int

const (
	// Pass — физике не нужно применять блокирующий отклик.
	Pass BlockDecision = iota
	// Block — применить жёсткую остановку. В текущем дизайне не
	// используется: вместо блокировки снаряд уничтожается.
	Block
)

// ObstacleResolution — результат предикатной фазы контакта с препятствием.
// Предикат чист относительно решения о блокировке: все побочные эффекты
// отложены в Effects и применяются хостом уже после чтения Decision.
type ObstacleResolution struct {
	Decision BlockDecision
	Effects  []func()
}

// Commit применяет отложенные побочные эффекты.
func (r ObstacleResolution) Commit() {
	for _, fn := range r.Effects {
		fn()
	}
}

// ImpulseApplier — применение импульса к телу: отбрасывание врагов
// и отталкивание игрока. Величина не округляется, это непрерывная скорость.
type ImpulseApplier interface {
	ApplyImpulse(body types.BodyID, angle, magnitude float64)
}

// HandleSource выдаёт хэндлы коллизионных тел. Хост индексирует свою
// широкую фазу этими же хэндлами.
type HandleSource struct {
	next types.BodyID
}

// NewBody возвращает следующий свободный хэндл.
func (h *HandleSource) NewBody() types.BodyID {
	h.next++
	return h.next
}
