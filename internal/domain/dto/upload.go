package dto

import "io"

// UploadFile is one image as it arrives from the multipart form.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadPhotoInput struct {
	Title       string
	Description string
	CategoryIDs []int64
	File        UploadFile
}

type UploadSeriesInput struct {
	Title       string
	Description string
	CategoryIDs []int64
	Files       []UploadFile
}
