package common

import (
	"testing"

	"skyops/crewboard/internal/config"
)

func TestNewRedisClientUsesConfiguredAddress(t *testing.T) {
	cfg := &config.Config{RedisAddr: "localhost:6390", RedisPassword: "secret"}

	client := NewRedisClient(cfg)
	defer client.Close()

	opts := client.Options()
	if opts.Addr != "localhost:6390" {
		t.Errorf("addr = %q, want localhost:6390", opts.Addr)
	}
	if opts.Password != "secret" {
		t.Errorf("password = %q, want the configured one", opts.Password)
	}
}
