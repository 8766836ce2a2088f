package ecs

import "fmt"

// EntityID — 64-битный идентификатор сущности.
//
// EntityID является value-type: его дёшево копировать и сравнивать.
// Формат битов (от старших к младшим):
//
//	[ Shard (8) | Generation (24) | Index (32) ]
//
// Где:
//   - Shard — идентификатор мира, выдавшего сущность
//   - Generation — версия слота (защита от устаревших ссылок после despawn)
//   - Index — индекс слота в пуле
//
// Индекс 0 зарезервирован, поэтому NilEntityID никогда не выдаётся пулом.
type EntityID uint64

// NilEntityID — нулевой идентификатор, аналог nil.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 24
	bitsShard = 8

	shiftGen   = bitsIndex
	shiftShard = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskShard = (1 << bitsShard) - 1
)

// PackEntityID собирает EntityID из составных частей.
// Значения вне диапазона обрезаются масками.
func PackEntityID(shard uint8, gen uint32, index uint32) EntityID {
	return EntityID(
		(uint64(shard)&maskShard)<<shiftShard |
			(uint64(gen)&maskGen)<<shiftGen |
			uint64(index),
	)
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

// Shard возвращает мир, которому принадлежит сущность.
func (id EntityID) Shard() uint8 {
	return uint8((id >> shiftShard) & maskShard)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [shard:gen:idx]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%d:%d:%d]", id.Shard(), id.Generation(), id.Index())
}
