// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

// A Handler receives output events from a Parser as the grammar is
// recognized. If a method reports an error, parsing stops and that error is
// returned to the caller.
//
// The parser ensures each BeginElement is paired with an EndElement for the
// same name, even when the enclosed input is malformed.
type Handler interface {
	// Begin an element wrapping an object, an array, or an array item.
	BeginElement(name string) error

	// End the most-recently-begun element, which has the given name.
	EndElement(name string) error

	// Report a scalar value to be written as an element with the given name.
	// The text of the element is tok.Literal().
	Value(name string, tok Token) error
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }
