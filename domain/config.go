package domain

// Configuration is a flat mapping of config keys to scalar or JSON-like values.
// A Configuration handed out by the config store is a snapshot and must not be mutated.
type Configuration map[string]any

// Well-known configuration keys.
const (
	ConfigOrigin              = "origin"
	ConfigPort                = "port"
	ConfigAppName             = "appname"
	ConfigBroadcastIntervalMs = "broadcastIntervalMs"
)

// DefaultConfiguration returns the built-in defaults, the lowest configuration layer.
func DefaultConfiguration() Configuration {
	return Configuration{
		ConfigOrigin:              "http://localhost:8080",
		ConfigPort:                8080,
		ConfigBroadcastIntervalMs: 200,
	}
}

// Clone returns a shallow copy.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
