package configs

// GeoIP points at a MaxMind database (or JSON CIDR list) used to fill in a
// viewer's country and city from the client address.
type GeoIP struct {
	Path string `env:"PATH"`
}
