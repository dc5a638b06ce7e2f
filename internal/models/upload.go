package models

import "io"

// FileUpload carries one multipart file from a controller down to object
// storage without buffering it.
type FileUpload struct {
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}
