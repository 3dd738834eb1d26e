package constants

import "strings"

// AllowedExtensions holds the file extensions accepted by the import endpoint.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MimeForExt returns the upload MIME type for a normalized extension.
func MimeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// MaxUploadBytes caps the size of a document accepted for import.
const MaxUploadBytes = 25 * 1024 * 1024
