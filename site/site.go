// Package site exports the portfolio as plain files for static hosting.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/nav"
	"github.com/okbaghel/devfolio/web"
	cs "github.com/okbaghel/devfolio/web/components"
	"github.com/schollz/progressbar/v3"
)

// StaticRenderContext renders the page without a server behind it: links
// jump straight to anchors and the terminal reveals itself.
func StaticRenderContext(profile *model.Profile) (*cs.RenderContext, error) {
	about, err := content.Markdown(profile.About)
	if err != nil {
		return nil, fmt.Errorf("could not render about text: %w", err)
	}

	return &cs.RenderContext{
		Profile:      profile,
		NavLinks:     nav.AnchorLinks(),
		AboutHTML:    about,
		AssetsPrefix: "assets",
		Static:       true,
		Terminal: cs.TerminalContext{
			Text:    profile.TypingText,
			DelayMs: profile.TypingDelay.Milliseconds(),
		},
	}, nil
}

type file struct {
	name  string
	write func(w io.Writer) error
}

// Build writes index.html, the assets and JSON copies of the project and
// skill lists into outDir. Progress is drawn on progress.
func Build(ctx context.Context, profile *model.Profile, outDir string, progress io.Writer) error {
	rc, err := StaticRenderContext(profile)
	if err != nil {
		return err
	}

	files := []file{
		{name: "index.html", write: func(w io.Writer) error {
			return cs.Page(rc).Render(ctx, w)
		}},
		{name: filepath.Join("api", "projects.json"), write: jsonWriter(profile.Projects)},
		{name: filepath.Join("api", "skills.json"), write: jsonWriter(profile.Skills)},
	}

	assets := web.Assets()

	names, err := fs.Glob(assets, "*")
	if err != nil {
		return fmt.Errorf("could not list assets: %w", err)
	}

	for _, name := range names {
		files = append(files, file{name: filepath.Join("assets", name), write: assetWriter(assets, name)})
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Exporting site"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := writeFile(filepath.Join(outDir, f.name), f.write); err != nil {
			return err
		}

		_ = bar.Add(1)
	}

	_ = bar.Finish()

	slog.InfoContext(logging.PackageCtx("site"), "Site exported", "dir", outDir, "files", len(files))

	return nil
}

func jsonWriter(v any) func(io.Writer) error {
	return func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}
}

func assetWriter(assets fs.FS, name string) func(io.Writer) error {
	return func(w io.Writer) error {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err
	}
}

// writeFile renders into memory first so that a failed render leaves no
// truncated file behind.
func writeFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return fmt.Errorf("could not render %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}
