package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/blackcoderx/weburl/pkg/storage"
	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/spf13/viper"
)

func catalogPath() string {
	return viper.GetString("catalog")
}

func environmentsPath() string {
	return storage.GetEnvironmentsPath(core.WorkspaceFolderName)
}

func loadCatalog() (*meta.Catalog, error) {
	catalog, err := meta.LoadCatalog(catalogPath())
	if err != nil {
		return nil, err
	}
	slog.Debug("catalog loaded", "path", catalogPath(), "classes", len(catalog.Classes()))
	return catalog, nil
}

func openStore() (*storage.Store, error) {
	return storage.OpenStore(environmentsPath())
}

// targetEnvironment resolves the --env flag against cfg, defaulting to the
// active environment.
func targetEnvironment(cfg *environment.Config, target string) (environment.Environment, error) {
	if target == "" {
		return cfg.Active(), nil
	}
	env, ok := cfg.Find(target)
	if !ok {
		return environment.Environment{}, fmt.Errorf("environment not found: %s", target)
	}
	return env, nil
}

// renderSelector loads everything a render needs and renders one selector.
func renderSelector(format, selector, target string) (string, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return "", err
	}
	store, err := openStore()
	if err != nil {
		return "", err
	}
	return renderWith(core.NewEngine(catalog), catalog, store.Snapshot(), format, selector, target)
}

func renderWith(engine *core.Engine, src meta.Source, cfg *environment.Config, format, selector, target string) (string, error) {
	sel, err := core.Select(src, selector)
	if err != nil {
		return "", err
	}
	env, err := targetEnvironment(cfg, target)
	if err != nil {
		return "", err
	}
	out, err := engine.RenderSelection(format, cfg, env, sel)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("no endpoint found for %s", selector)
	}
	return out, nil
}

// emit writes an artifact to w, optionally highlighted, and copies the raw
// artifact when --copy is set.
func emit(w io.Writer, artifact, format string) error {
	if viper.GetBool("pretty") {
		fmt.Fprintln(w, tui.HighlightArtifact(artifact, format))
	} else {
		fmt.Fprintln(w, artifact)
	}
	if viper.GetBool("copy") {
		if err := tui.CopyToClipboard(artifact); err != nil {
			return err
		}
		slog.Info("artifact copied to clipboard", "format", format)
	}
	return nil
}
