package constants

// Context keys set by the auth middleware and read by handlers
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// Task priorities
const (
	PriorityAlta   = "Alta"
	PriorityNormal = "Normal"
	PriorityBaixa  = "Baixa"
)

// NoDueDate is the stored placeholder for tasks and subtasks without a due
// date. It is a real value, not the absence of one, so the client can
// render it directly.
const NoDueDate = "Sem vencimento"

// ValidPriority reports whether p is one of the accepted priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityAlta, PriorityNormal, PriorityBaixa:
		return true
	}
	return false
}
