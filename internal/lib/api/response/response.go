package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope of every mutation answer: Message on success, Detail on failure.
type Response struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func OK(msg string) Response {
	return Response{
		Message: msg,
	}
}

func Error(detail string) Response {
	return Response{
		Detail: detail,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", strings.ToLower(err.Field())))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", strings.ToLower(err.Field())))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", strings.ToLower(err.Field())))
		}
	}

	return Response{
		Detail: strings.Join(errMsgs, ", "),
	}
}
