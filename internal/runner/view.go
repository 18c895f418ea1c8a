package runner

import (
	"fmt"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/store"
	"github.com/ryan-rushton/toolbelt/internal/styles"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// RenderResult is the default result view: text, then sections, listed
// items and the files a save would write.
func RenderResult(res transform.Result) string {
	var parts []string
	if res.Text != "" {
		parts = append(parts, res.Text)
	}
	for _, s := range res.Sections {
		parts = append(parts, styles.Label.Render(s.Title)+"\n"+s.Body)
	}
	if len(res.Items) > 0 {
		var b strings.Builder
		for _, it := range res.Items {
			fmt.Fprintf(&b, "  %-28s %s\n", it.Name, styles.Muted.Render(transform.FormatSize(it.Size)))
		}
		parts = append(parts, strings.TrimRight(b.String(), "\n"))
	}
	if len(res.Artifacts) > 0 {
		var b strings.Builder
		for _, a := range res.Artifacts {
			size := ""
			if a.Data != nil {
				size = ", " + transform.FormatSize(int64(len(a.Data)))
			}
			fmt.Fprintf(&b, "  %s %s\n", styles.Success.Render("↓"), a.Filename+styles.Muted.Render(" ("+a.MIME+size+")"))
		}
		parts = append(parts, strings.TrimRight(b.String(), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) render(res transform.Result) string {
	if m.spec.Render != nil {
		return m.spec.Render(res)
	}
	return RenderResult(res)
}

func (m Model) viewControl(i int, c control) string {
	label := styles.Label.Render(c.field.Label)
	if i == m.focus {
		label = styles.Selected.Render("> " + c.field.Label)
	}
	var widget string
	switch c.field.Kind {
	case FieldTextArea:
		widget = c.area.View()
	case FieldChoice:
		var opts []string
		for j, v := range c.field.Choices {
			if j == c.choice {
				opts = append(opts, styles.ActiveTab.Render(v))
			} else {
				opts = append(opts, styles.Tab.Render(v))
			}
		}
		widget = strings.Join(opts, "")
	case FieldToggle:
		widget = "[ ]"
		if c.on {
			widget = styles.Success.Render("[x]")
		}
	default:
		widget = c.text.View()
	}
	return label + "\n" + widget
}

func (m Model) help() string {
	switch m.state {
	case stateProcessing:
		return "esc cancel"
	case stateResult:
		return "c copy  s save  +/- feedback  e edit  ctrl+r reset  f1 help  esc back"
	}
	return "tab next  ←/→ choose  space toggle  ctrl+g run  ctrl+r reset  f1 help  esc back"
}

func (m Model) View() string {
	if m.tutorial.Visible() {
		return m.tutorial.View()
	}

	var b strings.Builder
	b.WriteString(shell.Header(m.spec.Title, m.spec.Description) + "\n")

	for i, c := range m.controls {
		b.WriteString(m.viewControl(i, c) + "\n\n")
	}

	switch m.state {
	case stateProcessing:
		b.WriteString(m.spin.View() + " " + styles.Muted.Render("Processing...") + "\n")
		if m.percent >= 0 {
			b.WriteString(m.bar.ViewAs(float64(m.percent)/100) + "\n")
		}
	case stateResult:
		b.WriteString(styles.Panel.Render(m.render(m.result)) + "\n")
		switch m.feedback {
		case "":
			b.WriteString(styles.Muted.Render("Was this tool helpful? + yes  - no") + "\n")
		case store.Positive, store.Negative:
			b.WriteString(styles.Success.Render("Thank you for your feedback!") + "\n")
		}
	case stateError:
		b.WriteString(styles.Panel.BorderForeground(styles.Red).Render(styles.Err.Render(m.errMsg)) + "\n")
	default:
		if m.spec.Live && !m.result.Empty() {
			b.WriteString(styles.Panel.Render(m.render(m.result)) + "\n")
		}
	}

	if m.notice != "" {
		style := styles.Notice
		if m.noticeErr {
			style = styles.Err
		}
		b.WriteString("\n" + style.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + styles.Help.Render(m.help()))
	return styles.Box.Render(b.String())
}
