package dto

import (
	"time"

	"github.com/goccy/go-json"
)

type ErrorResponse struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func NewErr(msg string) ErrorResponse {
	return ErrorResponse{
		Message: msg,
		Time:    time.Now().UTC(),
	}
}

func (e ErrorResponse) ToString() string {
	b, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return ""
	}

	return string(b)
}
