// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package report

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// field is one placeholder of a template.
type field struct {
	Name   string // Binding name.
	Format string // fmt format of the value.
	Fill   string // Padding, when Align is set.
	Align  byte   // '<', '>' or '^', or 0 when Format pads.
	Width  int
	Group  byte // Digit separator, or 0.
	Every  int  // Digits between separators.
}

// piece is literal text, or a placeholder when Field is set.
type piece struct {
	Text  string
	Field *field
}

// Template is a message with {name} placeholders. '{{' and '}}' stand
// for literal braces, and {name:spec} formats the value with a
// [[fill]align][#][0][width][,|_][dxXbo] spec, align being one of '<',
// '>' or '^'.
type Template struct {
	Source string
	pieces []piece
}

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var specRe = regexp.MustCompile(`^(?:(.)?([<>^]))?(#?)(0?)([0-9]*)([,_]?)([dxXbo]?)$`)

// fieldOf converts a placeholder spec to a field.
func fieldOf(name string, spec string) (fld *field, ok bool) {
	match := specRe.FindStringSubmatch(spec)
	if match == nil {
		return
	}

	fill, align, alt, zero, width, group, verb := match[1], match[2], match[3], match[4], match[5], match[6], match[7]
	if verb == "" {
		verb = "d"
	}
	if verb == "d" {
		alt = ""
	}

	fld = &field{Name: name}

	if group != "" {
		if (group == "," && verb != "d") || (zero != "" && align == "") {
			fld = nil
			return
		}
		fld.Group = group[0]
		fld.Every = 4
		if verb == "d" {
			fld.Every = 3
		}
		if align == "" {
			align = ">"
		}
	}

	if align != "" {
		fld.Align = align[0]
		fld.Width, _ = strconv.Atoi(width)
		fld.Fill = fill
		if fill == "" {
			fld.Fill = " "
			if zero != "" {
				fld.Fill = "0"
			}
		}
		zero, width = "", ""
	}

	// Zero padding counts the 0x prefix in the width, fmt does not.
	if alt == "#" && zero == "0" && width != "" {
		wid, _ := strconv.Atoi(width)
		width = ""
		if wid > 2 {
			width = strconv.Itoa(wid - 2)
		} else {
			zero = ""
		}
	}

	if verb == "o" && alt == "#" {
		// 0o prefix, as %#o would only add a leading 0.
		alt, verb = "", "O"
	}

	fld.Format = "%" + alt + zero + width + verb
	ok = true
	return
}

// groupDigits separates every fld.Every digits of text, right to left.
func (fld *field) groupDigits(text string) string {
	var head string
	if strings.HasPrefix(text, "-") {
		head, text = "-", text[1:]
	}
	if len(text) > 2 && text[0] == '0' && strings.IndexByte("xXbo", text[1]) >= 0 {
		head, text = head+text[:2], text[2:]
	}

	var out strings.Builder
	out.WriteString(head)
	for n := range len(text) {
		if n > 0 && (len(text)-n)%fld.Every == 0 {
			out.WriteByte(fld.Group)
		}
		out.WriteByte(text[n])
	}
	return out.String()
}

// render formats val.
func (fld *field) render(val any) string {
	text := fmt.Sprintf(fld.Format, val)
	if fld.Group != 0 {
		text = fld.groupDigits(text)
	}

	pad := fld.Width - utf8.RuneCountInString(text)
	if fld.Align == 0 || pad <= 0 {
		return text
	}

	switch fld.Align {
	case '<':
		return text + strings.Repeat(fld.Fill, pad)
	case '^':
		return strings.Repeat(fld.Fill, pad/2) + text + strings.Repeat(fld.Fill, pad-pad/2)
	default:
		return strings.Repeat(fld.Fill, pad) + text
	}
}

// ParseTemplate parses a message template.
func ParseTemplate(source string) (tmpl *Template, err error) {
	var pieces []piece
	var text strings.Builder

	for pos := 0; pos < len(source); pos++ {
		ch := source[pos]
		switch ch {
		case '{':
			if pos+1 < len(source) && source[pos+1] == '{' {
				text.WriteByte('{')
				pos++
				continue
			}
			end := strings.IndexByte(source[pos+1:], '}')
			if end < 0 {
				err = ErrTemplateSyntax{Template: source, Reason: f("unterminated '{'")}
				return
			}
			body := source[pos+1 : pos+1+end]
			name, spec, _ := strings.Cut(body, ":")
			if !nameRe.MatchString(name) {
				err = ErrTemplateSyntax{Template: source, Reason: f("bad placeholder '{%v}'", body)}
				return
			}
			fld, ok := fieldOf(name, spec)
			if !ok {
				err = ErrTemplateSyntax{Template: source, Reason: f("bad format '%v'", spec)}
				return
			}
			if text.Len() > 0 {
				pieces = append(pieces, piece{Text: text.String()})
				text.Reset()
			}
			pieces = append(pieces, piece{Field: fld})
			pos += end + 1
		case '}':
			if pos+1 < len(source) && source[pos+1] == '}' {
				text.WriteByte('}')
				pos++
				continue
			}
			err = ErrTemplateSyntax{Template: source, Reason: f("single '}'")}
			return
		default:
			text.WriteByte(ch)
		}
	}

	if text.Len() > 0 {
		pieces = append(pieces, piece{Text: text.String()})
	}

	tmpl = &Template{Source: source, pieces: pieces}
	return
}

// Names returns the placeholder names of the template, in order of first use.
func (tmpl *Template) Names() (names []string) {
	for _, pc := range tmpl.pieces {
		if pc.Field != nil && !slices.Contains(names, pc.Field.Name) {
			names = append(names, pc.Field.Name)
		}
	}
	return
}

// Render substitutes every placeholder. All names are checked against the
// bindings before anything is rendered.
func (tmpl *Template) Render(binds *Bindings) (text string, err error) {
	for _, name := range tmpl.Names() {
		if _, ok := binds.Get(name); !ok {
			err = ErrUnbound{Name: name}
			return
		}
	}

	var out strings.Builder
	for _, pc := range tmpl.pieces {
		if pc.Field == nil {
			out.WriteString(pc.Text)
			continue
		}
		val, _ := binds.Get(pc.Field.Name)
		out.WriteString(pc.Field.render(val))
	}

	text = out.String()
	return
}
