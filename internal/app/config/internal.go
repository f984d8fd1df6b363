package config

type InternalConfig struct {
	App App
}

type App struct {
	Env             string
	Port            string
	Timezone        string
	ShutdownTimeout int

	// Global per-IP request ceiling applied on the router.
	MaxRequests int
	// Tighter per-IP budget for rule creation.
	CreateRuleMaxRequestsPerMinute int
	CreateRuleBlockTimeInMinutes   int

	RequestTimeoutInSeconds int

	// Create serialization lock parameters.
	CreateLockExpirationInSeconds int
	CreateLockMaxAttempts         int
	CreateLockRetryDelayInMillis  int
}
