package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		raw    string
		envVar string
		isVar  bool
	}{
		{"${SEPOLIA_RPC_URL}", "SEPOLIA_RPC_URL", true},
		{"${_PRIVATE_RPC}", "_PRIVATE_RPC", true},
		{"https://sepolia.base.org", "", false},
		{"${BASE_RPC}/v2/key", "", false},
		{"${UNCLOSED", "", false},
		{"$BARE_VAR", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			envVar, isVar := DetectEnvVar(tt.raw)
			assert.Equal(t, tt.envVar, envVar)
			assert.Equal(t, tt.isVar, isVar)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	assert.Equal(t, "SEPOLIA_RPC_URL", GenerateEnvVarName("sepolia"))
	assert.Equal(t, "BASE_SEPOLIA_RPC_URL", GenerateEnvVarName("Base-Sepolia"))
	assert.Equal(t, "ANVIL_31337_RPC_URL", GenerateEnvVarName("anvil-31337"))
	assert.Equal(t, "POLYGON_ZKEVM_RPC_URL", GenerateEnvVarName("polygon.zkevm"))
}

func TestExpandEnvValue(t *testing.T) {
	t.Setenv("SSB_TEST_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("SSB_TEST_HOST", "rpc.example.org")

	tests := []struct {
		name     string
		rawValue string
		want     string
		wantErr  string
	}{
		{
			name:     "pure reference",
			rawValue: "${SSB_TEST_RPC_URL}",
			want:     "http://127.0.0.1:8545",
		},
		{
			name:     "embedded reference",
			rawValue: "https://${SSB_TEST_HOST}/v1",
			want:     "https://rpc.example.org/v1",
		},
		{
			name:     "hardcoded URL",
			rawValue: "http://localhost:8545",
			want:     "http://localhost:8545",
		},
		{
			name:     "unset pure reference",
			rawValue: "${SSB_TEST_UNSET_RPC_URL}",
			wantErr:  "SSB_TEST_UNSET_RPC_URL is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandEnvValue(tt.rawValue)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
