package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldCollection = "collection"
	FieldEntityID   = "entity_id"
	FieldShowDate   = "show_date"
	FieldLocation   = "location"
	FieldAmount     = "amount_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentMirror  = "mirror"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSuggest = "suggest"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSync     = "sync"
	OpRestore  = "restore"
	OpFlush    = "flush"
	OpSuggest  = "suggest"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
