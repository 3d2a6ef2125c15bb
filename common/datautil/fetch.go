// Copyright 2024 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datautil

import (
	"archive/zip"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorse-io/sarah/base/log"
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var (
	ErrHTTPStatus  = errors.New("unexpected http status")
	ErrIllegalPath = errors.NotValidf("archive entry path")
)

// Getter issues HTTP GET requests. *http.Client satisfies it.
type Getter interface {
	Get(url string) (*http.Response, error)
}

// Fetcher downloads dataset archives and extracts them under Dir.
//
// The only cache check is whether the extracted root directory exists, so a
// partially extracted directory prevents the archive from being downloaded
// again. Concurrent fetchers sharing a Dir are not coordinated.
type Fetcher struct {
	Client Getter
	// Dir is the extraction directory. The working directory is used if empty.
	Dir string
	// ShowProgress renders a progress bar on stdout while downloading.
	ShowProgress bool
}

// NewFetcher creates a fetcher using the default HTTP client.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{Client: http.DefaultClient, Dir: dir, ShowProgress: true}
}

// DownloadAndUnzip makes sure the archive root directory exists under Dir and
// returns its path. The archive at uri is downloaded and extracted only if the
// directory is absent.
func (f *Fetcher) DownloadAndUnzip(uri, root string) (string, error) {
	dir, err := f.dir()
	if err != nil {
		return "", errors.Trace(err)
	}
	target := filepath.Join(dir, root)
	if _, err = os.Stat(target); err == nil {
		return target, nil
	} else if !os.IsNotExist(err) {
		return "", errors.Trace(err)
	}
	zipFileName, err := f.download(uri, dir)
	if err != nil {
		return "", errors.Trace(err)
	}
	defer os.Remove(zipFileName)
	log.Logger().Info("unzip dataset", zap.String("archive", zipFileName), zap.String("destination", dir))
	fileNames, err := unzip(zipFileName, dir)
	if err != nil {
		return "", errors.Trace(err)
	}
	log.Logger().Info("unzip dataset finished", zap.Int("files", len(fileNames)))
	return target, nil
}

func (f *Fetcher) dir() (string, error) {
	if f.Dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(f.Dir)
}

func (f *Fetcher) client() Getter {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

// download saves the response body of src to a temporary zip file in dst.
func (f *Fetcher) download(src, dst string) (string, error) {
	log.Logger().Info("download dataset", zap.String("source", src), zap.String("destination", dst))
	response, err := f.client().Get(src)
	if err != nil {
		log.Logger().Error("failed to download", zap.Error(err), zap.String("source", src))
		return "", errors.Trace(err)
	}
	defer response.Body.Close()
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Annotatef(ErrHTTPStatus, "GET %s: %s", src, response.Status)
	}
	// Create file
	if err = os.MkdirAll(dst, os.ModePerm); err != nil {
		return "", errors.Trace(err)
	}
	fileName := filepath.Join(dst, uuid.NewString()+".zip")
	output, err := os.Create(fileName)
	if err != nil {
		log.Logger().Error("failed to create file", zap.Error(err), zap.String("filename", fileName))
		return "", errors.Trace(err)
	}
	defer output.Close()
	// Save file
	var body io.Reader = response.Body
	if f.ShowProgress {
		pbReader := progressbar.NewReader(response.Body, progressbar.DefaultBytes(
			response.ContentLength,
			"Downloading "+path.Base(src),
		))
		body = &pbReader
	}
	if _, err = io.Copy(output, body); err != nil {
		log.Logger().Error("failed to download", zap.Error(err), zap.String("source", src))
		_ = os.Remove(fileName)
		return "", errors.Trace(err)
	}
	return fileName, nil
}

// unzip extracts every entry of src into dst and returns the extracted paths.
func unzip(src, dst string) ([]string, error) {
	var fileNames []string
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer r.Close()
	for _, f := range r.File {
		filePath := filepath.Join(dst, f.Name)
		// Check for ZipSlip. More Info: http://bit.ly/2MsjAWE
		if !strings.HasPrefix(filePath, filepath.Clean(dst)+string(os.PathSeparator)) {
			return fileNames, errors.Annotatef(ErrIllegalPath, "%s", f.Name)
		}
		fileNames = append(fileNames, filePath)
		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(filePath, os.ModePerm); err != nil {
				return fileNames, errors.Trace(err)
			}
			continue
		}
		if err = extractFile(f, filePath); err != nil {
			return fileNames, errors.Trace(err)
		}
	}
	return fileNames, nil
}

func extractFile(f *zip.File, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	outFile, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, rc); err != nil {
		return err
	}
	return outFile.Close()
}
