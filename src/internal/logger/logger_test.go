package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePayloadMasksNationalID(t *testing.T) {
	payload := struct {
		NationalID string `json:"nationalId"`
		FullName   string `json:"fullName"`
		BirthDate  string `json:"birthDate"`
	}{"12345678900", "Maria Silva", "1990-04-12"}

	out, ok := SanitizePayload(payload).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", out["nationalId"])
	assert.Equal(t, "******", out["birthDate"])
	assert.Equal(t, "Maria Silva", out["fullName"])
}

func TestSanitizePayloadNested(t *testing.T) {
	payload := map[string]any{
		"clients": []any{map[string]any{"national_id": "1"}},
	}

	out := SanitizePayload(payload).(map[string]any)
	inner := out["clients"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", inner["national_id"])
}

func TestErrorWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "info")
	t.Cleanup(func() { Configure(os.Stdout, "info") })

	Error("account service withdraw failed", errors.New("Insufficient funds"), Fields{
		"accountNumber": 3,
		"nationalId":    "12345678900",
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "account service withdraw failed", line["msg"])
	assert.Equal(t, "Insufficient funds", line["error"])
	assert.Equal(t, "******", line["nationalId"])
	assert.EqualValues(t, 3, line["accountNumber"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "info")
	t.Cleanup(func() { Configure(os.Stdout, "info") })

	Debug("hidden", nil)
	assert.Zero(t, buf.Len())

	SetLevel("debug")
	Debug("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
