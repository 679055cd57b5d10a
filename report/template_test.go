package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func binds(pairs ...any) *Bindings {
	b := &Bindings{}
	for n := 0; n < len(pairs); n += 2 {
		b.Set(pairs[n].(string), uint16(pairs[n+1].(int)))
	}
	return b
}

func TestTemplateRender(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		template string
		expected string
	}){
		{"", ""},
		{"plain text", "plain text"},
		{"ri0={ri0} -> risc0={risc0}", "ri0=3 -> risc0=3"},
		{"{ri0}{ri0}", "33"},
		{"{{literal}} {ri0}", "{literal} 3"},
		{"}}{{", "}{"},
		{"{neg}", "65535"},
		{"{neg:x}", "ffff"},
		{"{neg:#06x}", "0xffff"},
		{"{ri0:#06x}", "0x0003"},
		{"{ri0:#08X}", "0X000003"},
		{"{ri0:#02x}", "0x3"},
		{"{ri0:#6x}", "   0x3"},
		{"{ri0:#06o}", "0o0003"},
		{"{ri0:04}", "0003"},
		{"{ri0:4d}", "   3"},
		{"{ri0:b}", "11"},
		{"{ri0:#b}", "0b11"},
		{"{ri0:X}", "3"},
		{"{neg:X}", "FFFF"},
		{"{ri0:#o}", "0o3"},
		{"{ri0:o}", "3"},
		{"{ri0:>4}", "   3"},
		{"{ri0:<4}|", "3   |"},
		{"{ri0:*<4}", "3***"},
		{"{ri0:^5}", "  3  "},
		{"{ri0:-^4}", "-3--"},
		{"{ri0:0>4}", "0003"},
		{"{ri0:<04}", "3000"},
		{"{ri0:>#6x}", "   0x3"},
		{"{ri0:x<#6x}", "0x3xxx"},
		{"{ri0:>1}", "3"},
		{"{neg:,}", "65,535"},
		{"{neg:_}", "65_535"},
		{"{neg:8,}", "  65,535"},
		{"{neg:<8,d}|", "65,535  |"},
		{"{neg:_b}", "1111_1111_1111_1111"},
		{"{neg:#_x}", "0xffff"},
		{"{ri0:,}", "3"},
	}

	b := binds("ri0", 3, "risc0", 3, "neg", 65535)
	for _, entry := range table {
		tmpl, err := ParseTemplate(entry.template)
		if !assert.NoError(err, entry.template) {
			continue
		}
		text, err := tmpl.Render(b)
		assert.NoError(err, entry.template)
		assert.Equal(entry.expected, text, entry.template)
	}
}

func TestTemplateNames(t *testing.T) {
	assert := assert.New(t)

	tmpl, err := ParseTemplate("{b} {a:x} {b} {{c}}")
	assert.NoError(err)
	assert.Equal([]string{"b", "a"}, tmpl.Names())
}

func TestTemplateUnbound(t *testing.T) {
	assert := assert.New(t)

	tmpl, err := ParseTemplate("expected {ro5}, got {risc5}")
	assert.NoError(err)

	text, err := tmpl.Render(binds("risc5", 1))
	assert.Empty(text)
	assert.ErrorIs(err, ErrTemplateBinding)
	assert.Equal(ErrUnbound{Name: "ro5"}, err)
}

func TestTemplateSpecRejected(t *testing.T) {
	assert := assert.New(t)

	for _, spec := range []string{"{neg:,x}", "{neg:08,}", "{neg:=4}", "{neg:+d}", "{neg:4.2}", "{neg:s}"} {
		_, err := ParseTemplate(spec)
		assert.Error(err, spec)
	}
}

func TestTemplateSyntax(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"{", "{ri0", "}", "a } b", "{}", "{0}", "{a.b}", "{a!r}", "{a:q}", "{a:+d}", "{a[0]}"} {
		_, err := ParseTemplate(source)
		assert.ErrorIs(err, ErrTemplateBinding, source)
		assert.ErrorAs(err, new(ErrTemplateSyntax), source)
	}
}

func TestBindingsOrder(t *testing.T) {
	assert := assert.New(t)

	b := binds("x", 1, "y", 2)
	b.Set("x", 3)

	var names []string
	var values []uint16
	for name, val := range b.All() {
		names = append(names, name)
		values = append(values, val)
	}
	assert.Equal([]string{"x", "y"}, names)
	assert.Equal([]uint16{3, 2}, values)
	assert.Equal(2, b.Len())

	_, ok := b.Get("z")
	assert.False(ok)
}
