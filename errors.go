// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import "fmt"

// Messages of the diagnostics reported by the parser.
const (
	MsgSyntax     = "Sintaxis invalida"
	MsgAttribute  = "Nombre de atributo invalido"
	MsgElement    = "Se esperaba un elemento"
	MsgTrailing   = "Tokens despues del final del JSON"
	MsgTooDeep    = "Anidamiento demasiado profundo"
	expectElement = "objeto/array/valor"
)

// SyntaxError is the concrete type of diagnostics reported by the parser.
// Expected and Found are empty for diagnostics that do not compare tokens.
type SyntaxError struct {
	Location LineCol
	Message  string
	Expected string
	Found    string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	msg := fmt.Sprintf("[Linea %d, Col %d] %s", s.Location.Line, s.Location.Column, s.Message)
	if s.Expected != "" {
		msg += fmt.Sprintf(" (esperaba %s, encontro %s)", s.Expected, s.Found)
	}
	return msg
}
