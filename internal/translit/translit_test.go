package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAlias(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Расы", "rasy"},
		{"Нации", "natsii"},
		{"Удалённый", "udalyonnyiy"},
		{"Страны", "strany"},
		{"Фракции", "fraktsii"},
		{"Общее", "obshchyeye"},
		{"Новости", "novosti"},
		{"Цивилизованный мраат", "tsivilizovannyiy_mraat"},
		{"Высший эльф", "vysshiiy_el'f"},
		{"Чёрный орк", "chyornyiy_ork"},
		{"  Южный -- орк ", "yuzhnyiy_ork"},
		{"Café Noir", "cafe_noir"},
		{"logo 2", "logo_2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToAlias(tt.name))
		})
	}
}

func TestTransliterateKeepsCase(t *testing.T) {
	assert.Equal(t, "Shchit i Myech", Transliterate("Щит и Меч"))
}
