package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidCommand   = goerr.New("invalid command", goerr.ID("invalid_command"))
	ErrFilenameRequired = goerr.New("filename is required", goerr.ID("filename_required"))
	ErrFileCreation     = goerr.New("file creation failed", goerr.ID("file_creation"))
	ErrConfiguration    = goerr.New("configuration error", goerr.ID("configuration"))
	ErrRepository       = goerr.New("repository error", goerr.ID("repository"))
	ErrRecordNotFound   = goerr.New("record not found", goerr.ID("record_not_found"))
)
