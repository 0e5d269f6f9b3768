package configs

// Tracing configures OTLP trace export. An empty Endpoint disables export.
type Tracing struct {
	Endpoint    string  `env:"ENDPOINT"`
	ServiceName string  `env:"SERVICE" envDefault:"adbroker"`
	SampleRate  float64 `env:"SAMPLE_RATE" envDefault:"1.0"`
}
