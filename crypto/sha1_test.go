package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestServerIDHashVectors checks the canonical vanilla test vectors by
// calling ServerIDHash with an empty shared secret and public key, so the
// hashed input is the bare username, matching the historical "notchian"
// examples for the sign-stringification algorithm.
func TestServerIDHashVectors(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Notch", "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48"},
		{"jeb_", "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1"},
		{"", "-af1e3f75a530d72cf4f8bdd2f5f47a0aeee88ef6"},
	}
	for _, c := range cases {
		got := ServerIDHash(c.name, nil, nil)
		require.Equal(t, c.want, got, "input %q", c.name)
	}
}
