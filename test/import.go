package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestdataDir is the absolute path of the testdata directory at the
// repository root.
func TestdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "testdata")
}

// LoadTestFile loads a test file from the testdata directory
//
// File contents are returned as a buffer and a map for the HTTP request headers.
// Additional form fields are added to the multipart body.
func LoadTestFile(t *testing.T, filePath string, fields ...map[string]string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(filepath.Join(TestdataDir(), filePath))
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	defer file.Close()

	return MultipartFile(t, filepath.Base(filePath), file, fields...)
}

// MultipartFile builds a multipart body with the content as "file" field.
func MultipartFile(t *testing.T, filename string, content io.Reader, fields ...map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for _, fieldMap := range fields {
		for name, value := range fieldMap {
			if err := mw.WriteField(name, value); err != nil {
				assert.Fail(t, err.Error())
			}
		}
	}

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, content); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
