package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid single digit",
			id:      "7",
			wantErr: false,
		},
		{
			name:    "valid multi digit",
			id:      "120",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("1", 10),
			wantErr: true,
			errMsg:  "id too long (max 9 characters)",
		},
		{
			name:    "ID with script tag",
			id:      "1<script>",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "negative ID",
			id:      "-1",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "ID with path traversal",
			id:      "../1",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePackageID(t *testing.T) {
	id, err := ParsePackageID("8")
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	_, err = ParsePackageID("0")
	assert.EqualError(t, err, "id must be positive")

	_, err = ParsePackageID("abc")
	assert.EqualError(t, err, "id contains invalid characters")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hola", SanitizeInput("  <b>hola</b> "))
	assert.Equal(t, "", SanitizeInput("<script></script>"))
	assert.Equal(t, "7–10 días", SanitizeInput("7–10 días"))
}
