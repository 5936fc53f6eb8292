package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/storage"
)

func TestOverrideStore(t *testing.T) {
	cfg := config.DefaultAppConfig
	a := NewApplication(&cfg)

	mem := storage.NewMemoryStore()
	a.OverrideStore(mem)

	assert.Same(t, mem, a.Store())
	assert.Equal(t, &cfg, a.Config())
}
