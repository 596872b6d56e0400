package config

const (
	appName    = "UserSystem"
	appVersion = "1.0.0"
)

// Info is the immutable application identity.
type Info struct {
	AppName string
	Version string
}

// AppConfig holds Info. There is no way to change it after construction.
type AppConfig struct {
	info Info
}

func NewAppConfig() *AppConfig {
	return &AppConfig{info: Info{AppName: appName, Version: appVersion}}
}

// Info returns a copy, so callers cannot modify the held value.
func (c *AppConfig) Info() Info {
	return c.info
}
