package report

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrTemplateBinding = errors.New(f("template binding"))
)

// ErrUnbound is a placeholder with no value.
type ErrUnbound struct {
	Name string
}

func (err ErrUnbound) Error() string {
	return f("placeholder {%v} has no value", err.Name)
}

func (err ErrUnbound) Is(target error) bool {
	return target == ErrTemplateBinding
}

// ErrTemplateSyntax is a template that cannot be parsed.
type ErrTemplateSyntax struct {
	Template string
	Reason   string
}

func (err ErrTemplateSyntax) Error() string {
	return f("template '%v': %v", err.Template, err.Reason)
}

func (err ErrTemplateSyntax) Is(target error) bool {
	return target == ErrTemplateBinding
}
