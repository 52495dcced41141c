package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Propaga o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " abc-123 ")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("Gera um novo ID quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		assert.Len(t, id, 36)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer

	original := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	Setup("info")

	ctx, _ := WithCorrelationID(context.Background(), "req-42")
	ForContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), "correlation_id=req-42")
	assert.Contains(t, buf.String(), "mensagem")
}

func TestSetup_InvalidLevel(t *testing.T) {
	Setup("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
