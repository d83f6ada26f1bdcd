package storage

import (
	"log/slog"
	"maps"
	"math"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/soa/internal/assert"
	"github.com/oliverbestmann/soa/internal/column"
)

type ComponentTypeId uint16

// ComponentType is the runtime identity of a component type. There is exactly
// one ComponentType instance per go type, so pointers can be compared directly.
type ComponentType struct {
	Name string
	Type reflect.Type

	// The Id of the type. Ids are assigned in registration order, starting at 1.
	Id ComponentTypeId

	// empty column that new columns are cloned from
	prototype column.Erased
}

func (c *ComponentType) String() string {
	return c.Name
}

// MakeColumn creates a new, empty column for values of this type.
func (c *ComponentType) MakeColumn() column.Erased {
	return c.prototype.Clone()
}

var componentTypes atomic.Pointer[map[unsafe.Pointer]*ComponentType]

func init() {
	// initialize the lookup table
	componentTypes.Store(&map[unsafe.Pointer]*ComponentType{})
}

// ComponentTypeOf returns the ComponentType of C, registering it on first use.
func ComponentTypeOf[C any]() *ComponentType {
	reflectType := reflect.TypeFor[C]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*componentTypes.Load())[ptrToType]; ok {
		return cached
	}

	return ensureComponentType(ptrToType, func(id ComponentTypeId) *ComponentType {
		return &ComponentType{
			Id:        id,
			Name:      reflectType.String(),
			Type:      reflectType,
			prototype: column.New[C](),
		}
	})
}

func ensureComponentType(ptrToType unsafe.Pointer, makeType func(id ComponentTypeId) *ComponentType) *ComponentType {
	for {
		previousTypes := componentTypes.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newTypeId := nextComponentTypeId(len(*previousTypes))

		newType := makeType(newTypeId)

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if componentTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New component type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

// nextComponentTypeId returns the id of the type registered after count other types.
func nextComponentTypeId(count int) ComponentTypeId {
	assert.That(count < math.MaxUint16, "can not register more than %d component types", math.MaxUint16)
	return ComponentTypeId(count + 1)
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func compareComponentTypes(lhs, rhs *ComponentType) int {
	return int(lhs.Id) - int(rhs.Id)
}
