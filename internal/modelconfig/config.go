// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package modelconfig

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/deckdiscovery"
	"github.com/philocalyst/anki/internal/noteschema"
)

type tomlModel struct {
	Name          string         `toml:"name"`
	SchemaVersion string         `toml:"schema_version"`
	Fields        []tomlField    `toml:"fields"`
	Templates     []tomlTemplate `toml:"templates"`
	Defaults      *tomlDefaults  `toml:"defaults"`
	SortField     string         `toml:"sort_field"`
	Tags          []string       `toml:"tags"`
}

type tomlField struct {
	Name            string   `toml:"name"`
	Sticky          bool     `toml:"sticky"`
	AssociatedMedia []string `toml:"associated_media"`
}

type tomlTemplate struct {
	Name string `toml:"name"`
}

type tomlDefaults struct {
	Font string `toml:"font"`
	Size uint32 `toml:"size"`
	Rtl  bool   `toml:"rtl"`
}

// Load decodes model.Config and folds in the auxiliary assets discovered
// under model.Path, producing a fully populated NoteModel.
func Load(model *deckdiscovery.Model_t) (*noteschema.NoteModel, error) {
	var tm tomlModel
	if _, err := toml.DecodeFile(model.Config, &tm); err != nil {
		return nil, &cerrs.TomlError{Cause: err}
	}

	version, err := noteschema.ParseSchemaVersion(tm.SchemaVersion)
	if err != nil {
		return nil, &cerrs.TomlError{Cause: err}
	}

	out := &noteschema.NoteModel{
		Name:          tm.Name,
		SchemaVersion: version,
		SortField:     tm.SortField,
		Tags:          tm.Tags,
	}
	for _, f := range tm.Fields {
		out.Fields = append(out.Fields, noteschema.Field{
			Name:            f.Name,
			Sticky:          f.Sticky,
			AssociatedMedia: f.AssociatedMedia,
		})
	}
	if tm.Defaults != nil {
		out.Defaults = &noteschema.Defaults{Font: tm.Defaults.Font, Size: tm.Defaults.Size, RTL: tm.Defaults.Rtl}
	}

	if out.CSS, err = readOptional(filepath.Join(model.Path, "style.css")); err != nil {
		return nil, err
	}
	if out.LatexPre, err = readOptional(filepath.Join(model.Path, "pre.tex")); err != nil {
		return nil, err
	}
	if out.LatexPost, err = readOptional(filepath.Join(model.Path, "post.tex")); err != nil {
		return nil, err
	}

	for order, tt := range tm.Templates {
		template, err := loadTemplate(model.Path, tt.Name, order)
		if err != nil {
			return nil, err
		}
		out.Templates = append(out.Templates, template)
	}

	return out, nil
}

// LoadAll loads every model discovered in a deck, in the order discovered.
func LoadAll(models []*deckdiscovery.Model_t) ([]*noteschema.NoteModel, error) {
	out := make([]*noteschema.NoteModel, 0, len(models))
	for _, m := range models {
		model, err := Load(m)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, nil
}

func loadTemplate(modelPath, name string, order int) (noteschema.Template, error) {
	question, err := readOptional(filepath.Join(modelPath, name+"front.hbs"))
	if err != nil {
		return noteschema.Template{}, err
	}
	answer, err := readOptional(filepath.Join(modelPath, name+"back.hbs"))
	if err != nil {
		return noteschema.Template{}, err
	}
	browserQuestion, err := readOptional(filepath.Join(modelPath, name+"front-browser.hbs"))
	if err != nil {
		return noteschema.Template{}, err
	}
	browserAnswer, err := readOptional(filepath.Join(modelPath, name+"back-browser.hbs"))
	if err != nil {
		return noteschema.Template{}, err
	}
	return noteschema.Template{
		Name:                  name,
		Order:                 order,
		QuestionFormat:        question,
		AnswerFormat:          answer,
		BrowserQuestionFormat: browserQuestion,
		BrowserAnswerFormat:   browserAnswer,
	}, nil
}

// readOptional returns the empty string, not an error, when path does not
// exist — most model assets are optional.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
