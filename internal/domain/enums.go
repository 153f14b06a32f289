package domain

// Status is the shared lifecycle state for goals, milestones and tasks.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAtRisk     Status = "at_risk"
	StatusDelayed    Status = "delayed"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[Status]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusAtRisk:     true,
	StatusDelayed:    true,
}

type RiskStatus string

const (
	RiskOpen   RiskStatus = "open"
	RiskClosed RiskStatus = "closed"
)

// RiskLevel is the derived severity bucket for a program's risk posture.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

type InvoiceKind string

const (
	InvoiceVendor        InvoiceKind = "vendor"
	InvoiceMiscellaneous InvoiceKind = "miscellaneous"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserApproved UserStatus = "approved"
	UserRejected UserStatus = "rejected"
)

type ChatRole string

const (
	ChatUser      ChatRole = "user"
	ChatAssistant ChatRole = "assistant"
)
