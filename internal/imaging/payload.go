package imaging

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// DecodePayload decodes a base64 image payload into raw bytes and a MIME
// type. Data URIs are accepted; a MIME hint from the prefix wins over byte
// sniffing. Payloads that sniff to something other than an image fall back
// to image/jpeg, which is what the capture path produces.
func DecodePayload(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}

	data, err := decodeBase64(s)
	if err != nil {
		return nil, "", err
	}
	return data, pickMIME(hintMIME, data), nil
}

// Extension maps a MIME type to the object-key extension.
func Extension(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpg"
	}
}

func decodeBase64(s string) ([]byte, error) {
	// Standard alphabet first, then URL-safe for client variations
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, nil
	} else {
		return nil, err
	}
}

func pickMIME(hint string, data []byte) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if len(data) > 0 {
		if detected := http.DetectContentType(data); strings.HasPrefix(detected, "image/") {
			return detected
		}
	}
	return "image/jpeg"
}
