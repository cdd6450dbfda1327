// Package idgen provides the tab id generator.
//
// The session core only needs a func returning a string that is unique within
// the process; the strategy is picked at startup from configuration.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers
type Generator func() string

// Strategy names accepted by FromStrategy
const (
	StrategyUUIDv4 = "uuid4"
	StrategyUUIDv7 = "uuid7"
)

// UUIDv4 returns a Generator producing random RFC 9562 version 4 UUIDs
func UUIDv4() Generator {
	return func() string {
		return uuid.NewString()
	}
}

// UUIDv7 returns a Generator producing time-ordered version 7 UUIDs
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Sequence returns a Generator yielding prefix1, prefix2, ... Used by tests
// that need predictable ids.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// Default is the generator used when none is configured
var Default Generator = UUIDv4()

// FromStrategy resolves a configured strategy name
func FromStrategy(name string) (Generator, error) {
	switch name {
	case "", StrategyUUIDv4:
		return UUIDv4(), nil
	case StrategyUUIDv7:
		return UUIDv7(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (want %s or %s)", name, StrategyUUIDv4, StrategyUUIDv7)
	}
}
