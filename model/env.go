package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvironment is returned by ParseEnv for unknown names.
var ErrInvalidEnvironment = errors.New("invalid logging environment")

// Env is a deployment environment. The string value is the key used
// to look the environment up in paths and formats configuration.
type Env string

const (
	Development Env = "development"
	Production  Env = "production"
	Test        Env = "test"
)

// short aliases match the names the environments were historically declared with.
var envByName = map[string]Env{
	"development": Development,
	"dev":         Development,
	"production":  Production,
	"prod":        Production,
	"test":        Test,
}

// ParseEnv maps a name to an Env, ignoring case.
func ParseEnv(name string) (Env, error) {
	if env, ok := envByName[strings.ToLower(name)]; ok {
		return env, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, name)
}

// Envs returns every known environment.
func Envs() []Env {
	return []Env{Development, Production, Test}
}

// IsValid reports whether e is one of the known environments.
func (e Env) IsValid() bool {
	switch e {
	case Development, Production, Test:
		return true
	default:
		return false
	}
}

func (e Env) String() string {
	return string(e)
}
