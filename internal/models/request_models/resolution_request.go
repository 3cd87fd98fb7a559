package request_models

type NavigateRequest struct {
	SessionID string            `json:"session_id" binding:"required"`
	Path      string            `json:"path"`
	Query     map[string]string `json:"query"`
	Fragment  string            `json:"fragment"`
}

type RecoverySessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Token     string `json:"token" binding:"required"`
}
