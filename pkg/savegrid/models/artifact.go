package models

// Artifact is an exported file held in memory.
// Writing it to disk or a browser download is left to the caller.
type Artifact struct {
	// Filename is the suggested download name.
	Filename string `json:"filename"`
	// MIMEType is the content type of Data.
	MIMEType string `json:"mime_type"`
	// Data holds the encoded document.
	Data []byte `json:"-"`
}

// Size returns the artifact size in bytes.
func (a *Artifact) Size() int {
	return len(a.Data)
}
