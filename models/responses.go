package models

// ContactListResponse is the envelope returned by GET /api/User/GetAll.
type ContactListResponse struct {
	Data struct {
		Users []Contact `json:"users"`
	} `json:"data"`

	// Success and Message mirror the envelope of the remote API; they are
	// informational only.
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ContactResponse is the envelope returned by single-record endpoints
// (get, create, update).
type ContactResponse struct {
	Data    Contact `json:"data"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}

// StatusResponse is the envelope returned by endpoints without a payload,
// such as delete.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ImageUploadResponse is the envelope returned by POST /api/User/UploadImage.
type ImageUploadResponse struct {
	Data struct {
		ImageURL string `json:"imageUrl"`
	} `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewContactListResponse wraps contacts into a successful list envelope.
// A nil slice is encoded as an empty array.
func NewContactListResponse(contacts []Contact) ContactListResponse {
	if contacts == nil {
		contacts = []Contact{}
	}
	var resp ContactListResponse
	resp.Data.Users = contacts
	resp.Success = true
	return resp
}

// NewImageUploadResponse wraps url into a successful upload envelope.
func NewImageUploadResponse(url string) ImageUploadResponse {
	var resp ImageUploadResponse
	resp.Data.ImageURL = url
	resp.Success = true
	return resp
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}
