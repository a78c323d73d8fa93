package console

import (
	"reflect"
	"testing"
	"time"
)

func TestConfigValidateAppliesDefaults(test *testing.T) {
	test.Parallel()
	cfg := Config{TokenSigningKey: "secret"}
	if err := cfg.Validate(); err != nil {
		test.Fatalf("validate: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr {
		test.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.TokenIssuer != defaultTokenIssuer {
		test.Fatalf("expected default issuer, got %q", cfg.TokenIssuer)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		test.Fatalf("expected default ttl, got %s", cfg.TokenTTL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != defaultAllowedOrigin {
		test.Fatalf("expected default origin, got %v", cfg.AllowedOrigins)
	}
}

func TestConfigValidateRequiresSigningKey(test *testing.T) {
	test.Parallel()
	cfg := Config{ListenAddr: ":8080", TokenTTL: time.Hour}
	if err := cfg.Validate(); err == nil {
		test.Fatalf("expected error for missing signing key")
	}
}

func TestParseAllowedOrigins(test *testing.T) {
	test.Parallel()

	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "single", raw: "http://localhost:8000", want: []string{"http://localhost:8000"}},
		{name: "multiple with spaces", raw: " http://a.example , http://b.example ", want: []string{"http://a.example", "http://b.example"}},
		{name: "skips blanks", raw: "http://a.example,,", want: []string{"http://a.example"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			got := ParseAllowedOrigins(testCase.raw)
			if !reflect.DeepEqual(got, testCase.want) {
				test.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}
