package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Command input
	CodeUnknownColor    Code = "UNKNOWN_COLOR"
	CodeUnknownCategory Code = "UNKNOWN_CATEGORY"
	CodeInputReadError  Code = "INPUT_READ_ERROR"
	CodeOutputError     Code = "OUTPUT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
