package usecasecontract

import "time"

// IConfigProvider exposes the configuration values consumed outside main.
type IConfigProvider interface {
	GetAppVersion() string
	GetDirectoryTimeout() time.Duration
	GetRateLimitPerSecond() float64
}
