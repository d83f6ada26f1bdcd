package soa

//go:generate go run ./cmd/generate -out .
