package echoapi

type SuccessResponse struct {
	Success string `json:"success"`
}
