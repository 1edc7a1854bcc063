package console

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// printer writes session output, optionally coloured by message kind.
type printer struct {
	out   io.Writer
	color bool
}

func (p *printer) styled(style color.Style, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		msg = style.Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Prompt writes text without a trailing newline.
func (p *printer) Prompt(text string) {
	fmt.Fprint(p.out, text)
}

func (p *printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) Title(format string, args ...interface{}) {
	p.styled(color.New(color.FgCyan, color.OpBold), format, args...)
}

func (p *printer) Success(format string, args ...interface{}) {
	p.styled(color.New(color.FgGreen), format, args...)
}

func (p *printer) Warn(format string, args ...interface{}) {
	p.styled(color.New(color.FgYellow), format, args...)
}

func (p *printer) Error(format string, args ...interface{}) {
	p.styled(color.New(color.FgRed), format, args...)
}

// Retry writes a re-prompt after invalid input, without a trailing newline.
func (p *printer) Retry(text string) {
	if p.color {
		text = color.Red.Sprint(text)
	}
	fmt.Fprint(p.out, text)
}
