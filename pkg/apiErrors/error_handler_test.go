package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct{ code string }

func (e codedErr) Error() string     { return "falha " + e.code }
func (e codedErr) ErrorCode() string { return e.code }

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
	}{
		{name: "Token ausente", code: ErrMissingToken, wantStatus: http.StatusUnauthorized},
		{name: "Usuário desativado", code: ErrUserDisabled, details: map[string]any{"user_id": "3"}, wantStatus: http.StatusForbidden},
		{name: "Backend fora do ar", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "Dado numérico inválido", code: ErrMalformedData, wantStatus: http.StatusUnprocessableEntity},
		{name: "Código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", tt.details)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			if tt.details == nil {
				assert.Nil(t, body.Details)
			} else {
				assert.NotNil(t, body.Details)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrInvalidToken, CodeOf(codedErr{code: ErrInvalidToken}))
	assert.Equal(t, ErrUserDisabled, CodeOf(fmt.Errorf("login: %w", codedErr{code: ErrUserDisabled})))
	assert.Empty(t, CodeOf(errors.New("sem código")))
	assert.Empty(t, CodeOf(nil))
}
