package dto

import "mime/multipart"

type UploadPictureRequest struct {
	RoomName          string                `validate:"required,max=100"`
	AccommodationName string                `validate:"required,max=100"`
	File              *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

type GetPictureRequest struct {
	RoomName          string `json:"roomName"          validate:"required,max=100"`
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type RemovePictureRequest struct {
	RoomName          string `json:"roomName"          validate:"required,max=100"`
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type PictureURLResponse struct {
	URL string `json:"url"`
}
