// Package textnorm normaliza texto de negocio: nombres de producto (llaves de reglas de
// comisión) y encabezados de hojas de cálculo.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key normaliza un nombre para comparación exacta: recorta espacios, compone a NFC
// y pasa a minúsculas. Conserva acentos: "Cámara" y "camara" son llaves distintas.
func Key(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Lower(language.Und).String(s)
}

// Fold normaliza para coincidencia difusa: como Key pero además elimina acentos,
// signos de puntuación y espacios ("Descripción " -> "descripcion").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, Key(s))
	if err != nil {
		out = Key(s)
	}
	var b strings.Builder
	for _, r := range out {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
