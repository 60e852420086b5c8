// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package modelconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philocalyst/anki/internal/deckdiscovery"
)

const basicConfigTOML = `
name = "Basic"
schema_version = "1.0.0"
sort_field = "Front"
tags = ["imported"]

[[fields]]
name = "Front"

[[fields]]
name = "Back"
sticky = true

[[templates]]
name = "Card"

[defaults]
font = "Arial"
size = 20
rtl = false
`

func TestLoadDecodesConfigAndAssets(t *testing.T) {
	dir := t.TempDir()
	modelDir := filepath.Join(dir, "Basic.model")
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := filepath.Join(modelDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(basicConfigTOML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(modelDir, "style.css"), []byte(".card { color: black }"), 0o644); err != nil {
		t.Fatalf("write style.css: %v", err)
	}
	if err := os.WriteFile(filepath.Join(modelDir, "Cardfront.hbs"), []byte("{{Front}}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	model, err := Load(&deckdiscovery.Model_t{Path: modelDir, Name: "Basic", Config: configPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if model.Name != "Basic" {
		t.Errorf("got name %q, want Basic", model.Name)
	}
	if !model.HasField("Front") || !model.HasField("Back") {
		t.Errorf("got fields %v, want Front and Back", model.FieldNames())
	}
	if model.CSS != ".card { color: black }" {
		t.Errorf("got css %q, want style.css contents", model.CSS)
	}
	if len(model.Templates) != 1 || model.Templates[0].QuestionFormat != "{{Front}}" {
		t.Errorf("got templates %+v, want one Card template with question format", model.Templates)
	}
	if model.LatexPre != "" {
		t.Errorf("got latex pre %q, want empty (no pre.tex written)", model.LatexPre)
	}
	if model.Defaults == nil || model.Defaults.Font != "Arial" || model.Defaults.Size != 20 {
		t.Errorf("got defaults %+v, want Font=Arial Size=20", model.Defaults)
	}
}
