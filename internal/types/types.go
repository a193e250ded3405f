// internal/types/types.go
package types

// EntityID — уникальный идентификатор игровой сущности в рамках сессии.
// Выдаётся реестром строго по возрастанию.
type EntityID uint64

// BodyID — хэндл коллизионного тела. Под этим хэндлом сущность известна
// физическому коллаборатору; реестр поддерживает соответствие
// BodyID <-> сущность при спавне и уничтожении.
type BodyID uint64
