package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFormatter_BrazilianPortuguese(t *testing.T) {
	m := newMoneyFormatter("pt-BR")
	out := m.Format(1234.56)

	assert.Contains(t, out, "R$")
	assert.Contains(t, out, "1.234,56")
}

func TestMoneyFormatter_AmericanEnglish(t *testing.T) {
	m := newMoneyFormatter("en-US")
	out := m.Format(1234.56)

	assert.Contains(t, out, "$")
	assert.Contains(t, out, "1,234.56")
}

func TestMoneyFormatter_InvalidLocaleFallsBack(t *testing.T) {
	m := newMoneyFormatter("not a locale")
	out := m.Format(99.9)

	assert.Contains(t, out, "R$")
	assert.Contains(t, out, "99,90")
}

func TestMoneyFormatter_ZeroAndRounding(t *testing.T) {
	m := newMoneyFormatter("pt-BR")

	assert.Contains(t, m.Format(0), "0,00")
	assert.Contains(t, m.Format(10.005), "10,01")
}
