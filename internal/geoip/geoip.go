package geoip

import (
	"encoding/json"
	"net"
	"os"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP resolves client addresses to a country code and city name, either
// from a MaxMind database or from a JSON list of CIDR records.
type GeoIP struct {
	db       *geoip2.Reader
	fallback []record
}

type record struct {
	net     *net.IPNet
	country string
	city    string
}

// Open loads the database at path. Files that are not MaxMind databases are
// parsed as JSON: [{"net": "1.2.3.0/24", "country": "KR", "city": "Seoul"}].
func Open(path string) (*GeoIP, error) {
	g := &GeoIP{}
	db, err := geoip2.Open(path)
	if err == nil {
		g.db = db
		return g, nil
	}

	data, jerr := os.ReadFile(path)
	if jerr != nil {
		return nil, err
	}
	var entries []struct {
		Net     string `json:"net"`
		Country string `json:"country"`
		City    string `json:"city"`
	}
	if jerr = json.Unmarshal(data, &entries); jerr != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, n, perr := net.ParseCIDR(e.Net); perr == nil {
			g.fallback = append(g.fallback, record{net: n, country: e.Country, city: e.City})
		}
	}
	return g, nil
}

// Country returns the ISO country code for ip, or "" when unknown.
func (g *GeoIP) Country(ip net.IP) string {
	if g == nil || ip == nil {
		return ""
	}
	if g.db != nil {
		if rec, err := g.db.Country(ip); err == nil {
			return rec.Country.IsoCode
		}
	}
	if r, ok := g.lookup(ip); ok {
		return r.country
	}
	return ""
}

// City returns the English city name for ip, or "" when unknown or when the
// database has no city data.
func (g *GeoIP) City(ip net.IP) string {
	if g == nil || ip == nil {
		return ""
	}
	if g.db != nil {
		if rec, err := g.db.City(ip); err == nil {
			return rec.City.Names["en"]
		}
	}
	if r, ok := g.lookup(ip); ok {
		return r.city
	}
	return ""
}

func (g *GeoIP) lookup(ip net.IP) (record, bool) {
	for _, r := range g.fallback {
		if r.net.Contains(ip) {
			return r, true
		}
	}
	return record{}, false
}

// Close releases the database.
func (g *GeoIP) Close() error {
	if g != nil && g.db != nil {
		return g.db.Close()
	}
	return nil
}
