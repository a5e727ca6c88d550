package models

import (
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type CloudStoragePayload struct {
	Filename string
	Path     string
}

func (c CloudStoragePayload) GetFilePath() string {
	if c.Path == "" {
		return c.Filename
	}
	return fmt.Sprintf("%s/%s", c.Path, c.Filename)
}

// NewCloudStoragePayload splits an object name into its folder and file name.
func NewCloudStoragePayload(input string) CloudStoragePayload {
	input = path.Clean(input)

	dir := path.Dir(input)
	filename := path.Base(input)
	if strings.TrimSpace(dir) == "." {
		dir = ""
	}

	return CloudStoragePayload{Filename: filename, Path: dir}
}

// NewCheckRunExportPayload names the export object of one check run under prefix.
func NewCheckRunExportPayload(prefix string, run CheckRun) CloudStoragePayload {
	filename := fmt.Sprintf("%s_%s.csv", run.CreatedAt.Format("20060102"), run.ID)
	return NewCloudStoragePayload(path.Join(prefix, run.TrustAccountID, filename))
}

type WriteStreamResult struct {
	errCh <-chan error
	url   string
}

func NewWriteStreamResult(errCh <-chan error, url string) WriteStreamResult {
	return WriteStreamResult{errCh: errCh, url: url}
}

// Wait blocks until the writer goroutine has closed its error channel.
func (r WriteStreamResult) Wait() (string, error) {
	var errs *multierror.Error
	for e := range r.errCh {
		errs = multierror.Append(errs, e)
	}

	return r.url, errs.ErrorOrNil()
}
