package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Somente data", input: "2024-03-01", want: "2024-03-01"},
		{name: "Timestamp ISO com Z", input: "2024-03-01T00:00:00.000Z", want: "2024-03-01"},
		{name: "Timestamp com offset", input: "2024-03-01T22:00:00-05:00", want: "2024-03-02"},
		{name: "Sem fuso", input: "2024-03-01T10:00:00", want: "2024-03-01"},
		{name: "Texto livre", input: "Semana 12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, date.Format("2006-01-02"))
		})
	}
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-01", DateOnly("2024-03-01T00:00:00.000Z"))
	assert.Equal(t, "Marzo", DateOnly("Marzo"))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets?page=3&limit=abc", nil)

	assert.Equal(t, 3, QueryInt(req, "page", 1))
	assert.Equal(t, 30, QueryInt(req, "limit", 30))
	assert.Equal(t, 1, QueryInt(req, "missing", 1))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusCreated, map[string]int{"total": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total":2}`, rec.Body.String())
}
