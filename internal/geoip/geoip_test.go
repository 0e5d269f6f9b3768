package geoip

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFallback(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geo.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestOpen_JSONFallback(t *testing.T) {
	path := writeFallback(t, `[
		{"net": "203.0.113.0/24", "country": "KR", "city": "Seoul"},
		{"net": "198.51.100.0/24", "country": "US"},
		{"net": "not-a-cidr", "country": "XX"}
	]`)

	g, err := Open(path)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, "KR", g.Country(net.ParseIP("203.0.113.7")))
	assert.Equal(t, "Seoul", g.City(net.ParseIP("203.0.113.7")))
	assert.Equal(t, "US", g.Country(net.ParseIP("198.51.100.1")))
	assert.Empty(t, g.City(net.ParseIP("198.51.100.1")))
	assert.Empty(t, g.Country(net.ParseIP("192.0.2.1")))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	assert.Error(t, err)
}

func TestOpen_GarbageFile(t *testing.T) {
	_, err := Open(writeFallback(t, "garbage"))
	assert.Error(t, err)
}

func TestNilGeoIP(t *testing.T) {
	var g *GeoIP
	assert.Empty(t, g.Country(net.ParseIP("203.0.113.7")))
	assert.Empty(t, g.City(net.ParseIP("203.0.113.7")))
	assert.NoError(t, g.Close())
}
