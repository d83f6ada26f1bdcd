package soa

// noCopy marks a type that must not be copied after first use.
// It is picked up by the copylocks check of "go vet".
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
