package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
