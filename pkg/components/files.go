package components

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path"
	"sort"
	"strings"
)

// Rejection codes reported by CheckFiles.
const (
	FileInvalidType = "file-invalid-type"
	FileTooLarge    = "file-too-large"
	FileTooSmall    = "file-too-small"
	TooManyFiles    = "too-many-files"
)

// FileInfo describes one dropped or uploaded file.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type,omitempty"`
}

// RejectionError is one reason a file was refused.
type RejectionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FileRejection pairs a refused file with every reason it failed.
type FileRejection struct {
	File   FileInfo         `json:"file"`
	Errors []RejectionError `json:"errors"`
}

// Accept maps MIME types (wildcards like "image/*" allowed) to extra file
// extensions accepted for that type, e.g. {"image/*": {".png", ".jpg"}}.
type Accept map[string][]string

// String renders the accept attribute value for a file input.
func (a Accept) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = strings.TrimSpace(key); key != "" {
			parts = append(parts, key)
		}
		for _, ext := range a[key] {
			if ext = strings.TrimSpace(ext); ext != "" {
				parts = append(parts, ext)
			}
		}
	}
	return strings.Join(parts, ",")
}

// Allows reports whether f matches any accepted MIME type or extension. An
// empty Accept allows everything.
func (a Accept) Allows(f FileInfo) bool {
	if len(a) == 0 {
		return true
	}
	typ := strings.ToLower(strings.TrimSpace(f.Type))
	if typ == "" {
		typ = mime.TypeByExtension(path.Ext(f.Name))
		if i := strings.IndexByte(typ, ';'); i >= 0 {
			typ = typ[:i]
		}
	}
	ext := strings.ToLower(path.Ext(f.Name))
	for pattern, exts := range a {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		switch {
		case strings.HasPrefix(pattern, "."):
			if ext == pattern {
				return true
			}
		case strings.HasSuffix(pattern, "/*"):
			if typ != "" && strings.HasPrefix(typ, strings.TrimSuffix(pattern, "*")) {
				return true
			}
		case pattern != "" && typ == pattern:
			return true
		}
		for _, candidate := range exts {
			if ext != "" && strings.EqualFold(strings.TrimSpace(candidate), ext) {
				return true
			}
		}
	}
	return false
}

// FileRules are the constraints CheckFiles enforces. Zero sizes and a zero
// MaxFiles mean unlimited; Multiple=false behaves like MaxFiles=1.
type FileRules struct {
	Accept   Accept `json:"accept,omitempty" yaml:"accept,omitempty"`
	MaxSize  int64  `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	MinSize  int64  `json:"minSize,omitempty" yaml:"minSize,omitempty"`
	Multiple bool   `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	MaxFiles int    `json:"maxFiles,omitempty" yaml:"maxFiles,omitempty"`
}

// CheckFiles splits files into accepted ones and rejections. Rejections are
// data for the caller to present; nothing here returns an error. When more
// files arrive than allowed every file is rejected with TooManyFiles in
// addition to its own reasons, and none are accepted.
func CheckFiles(files []FileInfo, rules FileRules) ([]FileInfo, []FileRejection) {
	limit := rules.MaxFiles
	if !rules.Multiple {
		limit = 1
	}
	tooMany := limit > 0 && len(files) > limit

	var accepted []FileInfo
	var rejected []FileRejection
	for _, f := range files {
		var reasons []RejectionError
		if !rules.Accept.Allows(f) {
			reasons = append(reasons, RejectionError{
				Code:    FileInvalidType,
				Message: invalidTypeMessage(rules.Accept),
			})
		}
		if rules.MaxSize > 0 && f.Size > rules.MaxSize {
			reasons = append(reasons, RejectionError{
				Code:    FileTooLarge,
				Message: fmt.Sprintf("File is larger than %d bytes", rules.MaxSize),
			})
		}
		if rules.MinSize > 0 && f.Size < rules.MinSize {
			reasons = append(reasons, RejectionError{
				Code:    FileTooSmall,
				Message: fmt.Sprintf("File is smaller than %d bytes", rules.MinSize),
			})
		}
		if tooMany {
			reasons = append(reasons, RejectionError{Code: TooManyFiles, Message: "Too many files"})
		}
		if len(reasons) > 0 {
			rejected = append(rejected, FileRejection{File: f, Errors: reasons})
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, rejected
}

func invalidTypeMessage(accept Accept) string {
	list := accept.String()
	if strings.Contains(list, ",") {
		return "File type must be one of " + strings.ReplaceAll(list, ",", ", ")
	}
	return "File type must be " + list
}

// FilesFromMultipart converts uploaded file headers, e.g. from
// (*http.Request).MultipartForm.File[name].
func FilesFromMultipart(headers []*multipart.FileHeader) []FileInfo {
	if len(headers) == 0 {
		return nil
	}
	out := make([]FileInfo, 0, len(headers))
	for _, header := range headers {
		if header == nil {
			continue
		}
		out = append(out, FileInfo{
			Name: header.Filename,
			Size: header.Size,
			Type: header.Header.Get("Content-Type"),
		})
	}
	return out
}
