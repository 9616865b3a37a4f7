package config

import "time"

type Server struct {
	ListenAddress       string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":9090"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8091"`
	LogFieldMaxLen      int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
