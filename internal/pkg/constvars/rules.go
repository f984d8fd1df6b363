package constvars

const (
	MongoCollectionRules = "rules"
)

const (
	RedisKeyCreateRuleLock    = "lock:rules:create"
	RedisKeyHoursCachePrefix  = "hours:range:"
	RedisKeyHoursCacheKeySet  = "hours:cache_keys"
	HoursCacheExpirationInSec = 300
)

const (
	RabbitMQRuleEventsQueue = "rule_events_queue"

	RuleEventCreated = "rule.created"
	RuleEventDeleted = "rule.deleted"
)
