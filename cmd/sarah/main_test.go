// Copyright 2025 gorse Project Authors
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

package main

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorse-io/sarah/cmd/version"
	"github.com/gorse-io/sarah/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeGroup(t *testing.T, root, group string, samples int) {
	for _, name := range append(dataset.SignalFiles(group), dataset.LabelFile(group)) {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
		content := strings.Repeat("1 2\n", samples)
		if name == dataset.LabelFile(group) {
			content = strings.Repeat("3\n", samples)
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	assert.NoError(t, err)
	assert.Equal(t, version.BuildInfo(), out)
}

func TestUCIHAR(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, dataset.UCIHARRoot)
	writeGroup(t, root, dataset.GroupTrain, 4)
	writeGroup(t, root, dataset.GroupTest, 2)
	out, err := execute(t, "ucihar", "--dir", dir, "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "(4, 2, 9)")
	assert.Contains(t, out, "(2, 2, 9)")
	assert.Contains(t, out, "(4, 1)")
}

func TestFetch(t *testing.T) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	f, err := w.Create("OpportunityUCIDataset/README")
	require.NoError(t, err)
	_, err = f.Write([]byte("readme"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()
	t.Setenv("SARAH_DATASET_OPPORTUNITY_URL", server.URL+"/OpportunityUCIDataset.zip")

	dir := t.TempDir()
	out, err := execute(t, "fetch", "opportunity", "--dir", dir, "--no-progress")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, dataset.OpportunityRoot)+"\n", out)
	_, err = os.Stat(filepath.Join(dir, dataset.OpportunityRoot, "README"))
	assert.NoError(t, err)

	_, err = execute(t, "fetch", "unknown", "--dir", dir)
	assert.Error(t, err)
}

func TestRenderSummary(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, renderSummary(buf, [][]string{
		{"train", "8", "(8, 243)", "(8, 7)"},
		{"test", "2", "(2, 243)", "(2, 7)"},
	}))
	assert.Contains(t, buf.String(), "(8, 243)")
	assert.Contains(t, buf.String(), "(2, 7)")
}
