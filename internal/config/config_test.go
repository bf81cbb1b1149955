package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: short
storage:
  type: memory
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 7, cfg.Planner.UpcomingDefaultDays)
	assert.Equal(t, 30, cfg.Planner.UpcomingMaxDays)
	assert.Equal(t, 30, cfg.Planner.GoalLookaheadDays)
	assert.Equal(t, time.Minute, cfg.Dashboard.CacheTTL())
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: too-short
storage:
  type: memory
`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is too short")
}

func TestNormalizePlanner(t *testing.T) {
	tests := []struct {
		name string
		in   PlannerConfig
		want PlannerConfig
	}{
		{"zero values", PlannerConfig{}, PlannerConfig{UpcomingDefaultDays: 7, UpcomingMaxDays: 30, GoalLookaheadDays: 30}},
		{"max below default", PlannerConfig{UpcomingDefaultDays: 10, UpcomingMaxDays: 5, GoalLookaheadDays: 14}, PlannerConfig{UpcomingDefaultDays: 10, UpcomingMaxDays: 30, GoalLookaheadDays: 14}},
		{"kept", PlannerConfig{UpcomingDefaultDays: 3, UpcomingMaxDays: 10, GoalLookaheadDays: 60}, PlannerConfig{UpcomingDefaultDays: 3, UpcomingMaxDays: 10, GoalLookaheadDays: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Planner: tt.in}
			require.NoError(t, cfg.Normalize())
			assert.Equal(t, tt.want, cfg.Planner)
		})
	}
}
