package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/posixfs/internal/configuration"
	"github.com/desertwitch/posixfs/internal/posix"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

const labelWidth = 14

//nolint:gochecknoglobals
var (
	labelStyle = lipgloss.NewStyle().
			Width(labelWidth).
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// field is one labeled line of text output.
type field struct {
	label string
	value string
	note  string
}

func renderFields(w io.Writer, fields []field) error {
	var sb strings.Builder

	for _, f := range fields {
		sb.WriteString(labelStyle.Render(f.label))
		sb.WriteString(f.value)
		if f.note != "" {
			sb.WriteString(" ")
			sb.WriteString(mutedStyle.Render("(" + f.note + ")"))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// print writes v in the configured format, using text for the text format.
func (app *App) print(v any, text func(w io.Writer) error) error {
	switch app.cfg.Output {
	case configuration.OutputJSON:
		enc := json.NewEncoder(app.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case configuration.OutputYAML:
		enc := yaml.NewEncoder(app.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	return text(app.stdout)
}

// printLine writes a single value, wrapped as {key: value} for the
// structured formats.
func (app *App) printLine(key string, value any) error {
	return app.print(map[string]any{key: value}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, value)

		return err
	})
}

type statResult struct {
	Path       string `json:"path"                 yaml:"path"`
	ModeString string `json:"modeString,omitempty" yaml:"modeString,omitempty"`
	posix.Stat `yaml:",inline"`
}

func statFields(r statResult) []field {
	if !r.Exists {
		return []field{
			{label: "path", value: r.Path},
			{label: "exists", value: "false"},
		}
	}

	return []field{
		{label: "path", value: r.Path},
		{label: "exists", value: "true"},
		{label: "mode", value: r.ModeString, note: fmt.Sprintf("%04o", r.Permissions())},
		{label: "size", value: humanize.Comma(r.Size), note: humanize.IBytes(uint64(r.Size))}, //nolint:gosec
		{label: "owner", value: fmt.Sprintf("%d:%d", r.UID, r.GID)},
		{label: "links", value: fmt.Sprint(r.LinkCount)},
		{label: "device", value: fmt.Sprint(r.Device), note: fmt.Sprintf("rdev %d", r.DeviceID)},
		{label: "inode", value: fmt.Sprint(r.Inode)},
		{label: "blocks", value: fmt.Sprint(r.BlockCount), note: fmt.Sprintf("%d byte io", r.BlockSize)},
		timeField("access", r.AccessTimeMs),
		timeField("modify", r.ModifyTimeMs),
		timeField("change", r.ChangeTimeMs),
	}
}

func timeField(label string, ms int64) field {
	t := time.UnixMilli(ms)

	return field{
		label: label,
		value: t.Format(time.RFC3339),
		note:  humanize.Time(t),
	}
}
