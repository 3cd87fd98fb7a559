package request_models

type GenerateDraftRequest struct {
	Theme string `json:"theme" binding:"required,max=120"`
	Mode  string `json:"mode"`
}
