package constvars

// Client-facing messages. The validation texts keep the wording of the
// original rules API so existing consumers see the errors they already know.
const (
	ErrClientInvalidDay                    = "Invalid day. Valid date format is: 'DD-MM-YYYY'"
	ErrClientInvalidTime                   = "Invalid time. Valid time format is: 'HH:mm'"
	ErrClientInvalidRuleType               = "Invalid rule_type. Valid rule types are: 'ONE_DAY', 'DAILY' and 'WEEKLY'"
	ErrClientInvalidWeekDaysType           = "Invalid week_days type. Valid week days type is: non-empty Array"
	ErrClientInvalidWeekDaysElement        = "Invalid week_days' element type. Valid week_days' element type is: int between 0 and 6"
	ErrClientInvalidIntervalsType          = "Invalid intervals type. Valid intervals type is: non-empty Array"
	ErrClientInvalidInterval               = "Invalid interval. Valid interval start and end format is: 'DD-MM-YYYY'"
	ErrClientInvalidRange                  = "Invalid range. Range start must not be after range end"
	ErrClientRuleNotFound                  = "Rule not found."
	ErrClientRuleConflictFormat            = "Rule conflict found: rule %s has interval %s"
	ErrClientRuleStoreBusy                 = "Another rule is being created right now, please retry"
	ErrClientCannotProcessRequest          = "We cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application"
	ErrClientServerLongRespond             = "Server takes too long to respond"
	ErrClientMissingRequestID              = "Request cannot be identified"
)

// Developer-facing messages, logged but never returned to clients in
// production.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevCannotParseJSON          = "Failed to parse request body as JSON"
	ErrDevRuleNotFound             = "Rule does not exist in the rules collection"
	ErrDevRuleConflict             = "Candidate rule overlaps an already stored rule"
	ErrDevRuleLockNotAcquired      = "Could not acquire the create-rule lock"
	ErrDevMissingRequestID         = "Request ID not found in request context"
	ErrDevServerDeadlineExceeded   = "Request deadline exceeded"
	ErrDevDBFailedToFindDocument   = "Failed to find document(s) in MongoDB"
	ErrDevDBFailedToInsertDocument = "Failed to insert document into MongoDB"
	ErrDevDBFailedToDeleteDocument = "Failed to delete document from MongoDB"
	ErrDevDBFailedToIterateDocs    = "Failed to iterate MongoDB cursor"
	ErrDevDBDuplicateRuleID        = "Rule id already exists in the rules collection"
	ErrDevRedisGetData             = "Failed to get data from Redis"
	ErrDevRedisSetData             = "Failed to set data in Redis"
	ErrDevRedisDeleteData          = "Failed to delete data from Redis"
	ErrDevRedisSAdd                = "Failed to add member to Redis set"
	ErrDevRedisSMembers            = "Failed to read members of Redis set"
	ErrDevRedisSetNX               = "Failed to set data with NX in Redis"
	ErrDevRedisUnlock              = "Failed to release Redis lock"
	ErrDevCannotMarshalJSON        = "Failed to marshal value as JSON"
	ErrDevRabbitMQPublishFormat    = "Failed to publish message to queue %s"
)
