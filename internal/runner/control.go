package runner

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// control is the live widget behind a Field.
type control struct {
	field  Field
	text   textinput.Model
	area   textarea.Model
	choice int
	on     bool
}

func newControl(f Field) control {
	c := control{field: f}
	switch f.Kind {
	case FieldTextArea:
		c.area = textarea.New()
		c.area.Placeholder = f.Placeholder
		c.area.ShowLineNumbers = false
		c.area.CharLimit = 0
		c.area.SetWidth(60)
		c.area.SetHeight(6)
	case FieldChoice, FieldToggle:
	default:
		c.text = textinput.New()
		c.text.Placeholder = f.Placeholder
		c.text.Width = 50
		if f.Kind == FieldNumber {
			c.text.CharLimit = 6
			c.text.Width = 8
		}
	}
	c.reset()
	return c
}

// reset restores the field's default.
func (c *control) reset() {
	switch c.field.Kind {
	case FieldTextArea:
		c.area.SetValue(c.field.Default)
	case FieldChoice:
		c.choice = 0
		for i, v := range c.field.Choices {
			if v == c.field.Default {
				c.choice = i
			}
		}
	case FieldToggle:
		c.on, _ = strconv.ParseBool(c.field.Default)
	default:
		c.text.SetValue(c.field.Default)
	}
}

func (c control) value() string {
	switch c.field.Kind {
	case FieldTextArea:
		return c.area.Value()
	case FieldChoice:
		if len(c.field.Choices) == 0 {
			return ""
		}
		return c.field.Choices[c.choice]
	case FieldToggle:
		return strconv.FormatBool(c.on)
	default:
		return c.text.Value()
	}
}

func (c *control) focus() tea.Cmd {
	switch c.field.Kind {
	case FieldTextArea:
		return c.area.Focus()
	case FieldChoice, FieldToggle:
		return nil
	default:
		return c.text.Focus()
	}
}

func (c *control) blur() {
	switch c.field.Kind {
	case FieldTextArea:
		c.area.Blur()
	case FieldChoice, FieldToggle:
	default:
		c.text.Blur()
	}
}

// cycle moves a choice by delta, wrapping around.
func (c *control) cycle(delta int) {
	n := len(c.field.Choices)
	if n == 0 {
		return
	}
	c.choice = ((c.choice+delta)%n + n) % n
}

// update feeds msg to the widget.
func (c *control) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.field.Kind {
	case FieldTextArea:
		c.area, cmd = c.area.Update(msg)
	case FieldChoice, FieldToggle:
	default:
		c.text, cmd = c.text.Update(msg)
	}
	return cmd
}

func (c *control) setWidth(w int) {
	switch c.field.Kind {
	case FieldTextArea:
		c.area.SetWidth(w)
	case FieldChoice, FieldToggle, FieldNumber:
	default:
		c.text.Width = w
	}
}
