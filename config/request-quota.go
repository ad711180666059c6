package config

// Support request quota configuration
type RequestQuotaConfig struct {
	MaxPending int // Maximum simultaneous pending requests per profile
}

var DefaultRequestQuotaConfig = RequestQuotaConfig{
	MaxPending: 5,
}
