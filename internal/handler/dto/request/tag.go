package request

// AttachTagsRequest carries a comma separated tag string, e.g. "Go, SQL".
type AttachTagsRequest struct {
	Tags string `json:"tags" binding:"required,max=4096"`
}
