package vision

import (
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/parte-archiv/parte-tracker/constants"
)

// ReadImage loads an image file and returns its bytes plus MIME type.
func ReadImage(path string) ([]byte, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return b, constants.MIMEByExt(filepath.Ext(path)), nil
}

// ReadAsDataURL encodes an image file as a base64 data URL for providers that
// take inline images in chat messages.
func ReadAsDataURL(path string) (string, string, error) {
	b, mt, err := ReadImage(path)
	if err != nil {
		return "", "", err
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), mt, nil
}
