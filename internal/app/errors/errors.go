package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToReadEnv     = errors.New("failed to read .env file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogLevel   = errors.New("invalid logging level")
	ErrInvalidLogFormat  = errors.New("invalid logging format")
	ErrStartPageRequired = errors.New("ui start page is required")
	ErrUnknownPage       = errors.New("unknown page")

	ErrConfigFileExists     = errors.New("config file already exists")
	ErrFailedToRenderConfig = errors.New("failed to render config template")
	ErrFailedToWriteConfig  = errors.New("failed to write config file")

	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
