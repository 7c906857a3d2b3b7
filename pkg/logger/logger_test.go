package logger_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jhoicas/bluebook-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Named("onboarding").Info().Str("company_id", "c1").Msg("onboarding completado")
	log.Debug().Msg("se filtra por nivel")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "onboarding", entry["component"])
	assert.Equal(t, "c1", entry["company_id"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}

func TestNew_LevelParsing(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: " WARN ", Out: &buf})
	log.Info().Msg("filtrado")
	assert.Empty(t, buf.String())
	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	log = logger.New(logger.Config{Env: "production", Level: "ruido", Out: &buf})
	log.Info().Msg("info por defecto")
	assert.Contains(t, buf.String(), "info por defecto")
}
