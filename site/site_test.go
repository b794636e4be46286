package site_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWritesSite(t *testing.T) {
	out := t.TempDir()
	profile := content.Default()

	require.NoError(t, site.Build(context.Background(), profile, out, io.Discard))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)

	page := string(index)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `data-static="true"`)
	assert.Contains(t, page, `href="#about"`)
	assert.NotContains(t, page, "/nav/about")
	assert.NotContains(t, page, "data-socket")
	assert.Contains(t, page, `data-text="Building scalable web applications with modern technologies..."`)
	assert.Contains(t, page, `data-delay="50"`)
	assert.Contains(t, page, `src="assets/app.js"`)

	for _, name := range []string{"app.js", "site.css"} {
		info, err := os.Stat(filepath.Join(out, "assets", name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	data, err := os.ReadFile(filepath.Join(out, "api", "projects.json"))
	require.NoError(t, err)

	var projects []model.Project
	require.NoError(t, json.Unmarshal(data, &projects))
	assert.Equal(t, profile.Projects, projects)
}

func TestBuildStopsWhenCancelled(t *testing.T) {
	out := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := site.Build(ctx, content.Default(), out, io.Discard)
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(filepath.Join(out, "index.html"))
	assert.True(t, os.IsNotExist(err))
}
