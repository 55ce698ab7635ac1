package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
}

// ReceiveConfig bounds what the receive endpoint accepts
type ReceiveConfig struct {
	MaxBodyBytes int64 `yaml:"maxBodyBytes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Receive ReceiveConfig `yaml:"receive"`
}
