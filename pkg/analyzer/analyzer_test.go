//go:build !integration

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityBlocking(t *testing.T) {
	tests := []struct {
		severity Severity
		blocking bool
	}{
		{SeverityError, true},
		{SeverityParseError, true},
		{SeverityWarning, false},
		{SeverityInformation, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.blocking, tt.severity.Blocking())
		})
	}
}

func TestDecodeFindings(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		data := []byte(`[
			{"severity":"Error","ruleName":"PSAvoidUsingPlainTextForPassword","line":12,"message":"bad"},
			{"severity":"Warning","ruleName":"PSAvoidUsingWriteHost","line":3,"message":"meh"}
		]`)
		findings, err := decodeFindings(data)
		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, SeverityError, findings[0].Severity)
		assert.Equal(t, 12, findings[0].Line)
	})

	t.Run("single object from ConvertTo-Json", func(t *testing.T) {
		data := []byte(`{"severity":"ParseError","ruleName":"Parser","message":"unexpected token"}`)
		findings, err := decodeFindings(data)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.True(t, findings[0].Severity.Blocking())
	})

	t.Run("empty output", func(t *testing.T) {
		findings, err := decodeFindings(nil)
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("null output", func(t *testing.T) {
		findings, err := decodeFindings([]byte("null"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("garbage output", func(t *testing.T) {
		_, err := decodeFindings([]byte("PSScriptAnalyzer not installed"))
		require.Error(t, err)
	})
}
