package test

import (
	"os"
	"testing"
)

type EnvVars struct {
	t    *testing.T
	vars map[string]string
}

// NewEnvVars collects the named environment variables, skipping the test
// when any of them is missing.
func NewEnvVars(t *testing.T, keys ...string) EnvVars {
	t.Helper()
	e := EnvVars{
		t:    t,
		vars: map[string]string{},
	}

	for _, key := range keys {
		value, ok := os.LookupEnv(key)
		if !ok {
			t.Skipf("skipping test because %s is not set", key)
		}
		e.vars[key] = value
	}

	return e
}

func (e EnvVars) Get(key string) string {
	if v, ok := e.vars[key]; ok {
		return v
	}

	e.t.Fatalf("env var %s was not requested", key)
	return ""
}
