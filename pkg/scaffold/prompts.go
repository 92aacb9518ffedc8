package scaffold

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-collections/pkg/fields"
)

// ErrPromptAborted is returned when the user interrupts an interactive
// prompt.
var ErrPromptAborted = errors.New("scaffold: prompt aborted")

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// PromptDriver abstracts the interactive terminal so outlines can be
// collected in tests without one.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// NewSurveyDriver returns the survey-backed prompt driver used by the CLI.
func NewSurveyDriver() PromptDriver {
	return &surveyDriver{}
}

type surveyDriver struct{}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(value any) error {
			str, _ := value.(string)
			return cfg.Validator(str)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range cfg.Options {
		if option == out {
			return i, nil
		}
	}
	return 0, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptAborted
	}
	return err
}

// Outline is the collected shape of a collection before rendering.
type Outline struct {
	Slug   string
	Fields []FieldOutline
}

// FieldOutline is one prompted field declaration.
type FieldOutline struct {
	Name  string
	Type  string
	Label string
}

// dataFieldTypes are the storage-bearing types offered by the prompts.
// Layout wrappers are authored by hand once real structure is needed.
var dataFieldTypes = []string{
	string(fields.FieldTypeText),
	string(fields.FieldTypeTextarea),
	string(fields.FieldTypeRichText),
	string(fields.FieldTypeNumber),
	string(fields.FieldTypeDate),
	string(fields.FieldTypeCheckbox),
	string(fields.FieldTypeSelect),
	string(fields.FieldTypeRadio),
	string(fields.FieldTypeEmail),
	string(fields.FieldTypePassword),
	string(fields.FieldTypeUpload),
	string(fields.FieldTypeRelationship),
	string(fields.FieldTypeArray),
	string(fields.FieldTypeGroup),
	string(fields.FieldTypeBlocks),
	string(fields.FieldTypeJSON),
	string(fields.FieldTypePoint),
	string(fields.FieldTypeSlug),
}

// CollectOutline walks the user through a collection outline: a slug, then
// fields until they decline to add another.
func CollectOutline(ctx context.Context, driver PromptDriver) (Outline, error) {
	slug, err := driver.Input(ctx, InputConfig{
		Message:   "Collection slug:",
		Help:      "Storage identifier, e.g. posts or blogAuthors.",
		Validator: requireValue("slug"),
	})
	if err != nil {
		return Outline{}, err
	}

	outline := Outline{Slug: strings.TrimSpace(slug)}
	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Add a field?",
			Default: len(outline.Fields) == 0,
		})
		if err != nil {
			return Outline{}, err
		}
		if !more {
			return outline, nil
		}

		name, err := driver.Input(ctx, InputConfig{
			Message:   "Field name:",
			Validator: requireValue("field name"),
		})
		if err != nil {
			return Outline{}, err
		}
		typeIdx, err := driver.Select(ctx, SelectConfig{
			Message:  "Field type:",
			Options:  dataFieldTypes,
			PageSize: 10,
		})
		if err != nil {
			return Outline{}, err
		}
		label, err := driver.Input(ctx, InputConfig{
			Message: "Label (blank for a humanized default):",
		})
		if err != nil {
			return Outline{}, err
		}

		outline.Fields = append(outline.Fields, FieldOutline{
			Name:  strings.TrimSpace(name),
			Type:  dataFieldTypes[typeIdx],
			Label: strings.TrimSpace(label),
		})
	}
}

func requireValue(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}
