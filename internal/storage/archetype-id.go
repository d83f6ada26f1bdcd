package storage

import (
	"encoding/binary"
	"hash/maphash"
	"slices"
)

var seed = maphash.MakeSeed()

type ArchetypeId uint64

// ArchetypeIdOf returns the ArchetypeId for the given ComponentType slice.
// The return value sortedTypes contains the provided types in a deterministic order.
// Two slices holding the same types in any order produce the same id.
func ArchetypeIdOf(types []*ComponentType) (id ArchetypeId, sortedTypes []*ComponentType) {
	sortedTypes = slices.Clone(types)

	// sort slices by id to have a deterministic ordering
	slices.SortFunc(sortedTypes, compareComponentTypes)

	// hash the types to have an id
	return hashTypes(sortedTypes), sortedTypes
}

func hashTypes(types []*ComponentType) ArchetypeId {
	var hash maphash.Hash

	hash.SetSeed(seed)

	for _, ty := range types {
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(ty.Id))
		_, _ = hash.Write(buf[:])
	}

	return ArchetypeId(hash.Sum64())
}
