// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of XML character data and the derivation
// of element names from object keys.
package escape

import "go4.org/mem"

// AppendText appends src to dst with the XML special characters &, <, and >
// replaced by entity references. All other bytes are copied unchanged.
func AppendText(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		i := indexSpecial(src)
		if i < 0 {
			return mem.Append(dst, src)
		}
		dst = mem.Append(dst, src.SliceTo(i))
		switch src.At(i) {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		}
		src = src.SliceFrom(i + 1)
	}
	return dst
}

// Text returns s escaped as XML character data.
func Text(s string) string {
	src := mem.S(s)
	if indexSpecial(src) < 0 {
		return s
	}
	return string(AppendText(make([]byte, 0, len(s)+8), src))
}

// TagName derives an element name from an object key by replacing each space
// with an underscore. No other byte is altered, so the result need not be a
// valid XML name.
func TagName(key string) string {
	src := mem.S(key)
	i := mem.IndexByte(src, ' ')
	if i < 0 {
		return key
	}
	tag := make([]byte, 0, len(key))
	for i >= 0 {
		tag = mem.Append(tag, src.SliceTo(i))
		tag = append(tag, '_')
		src = src.SliceFrom(i + 1)
		i = mem.IndexByte(src, ' ')
	}
	return string(mem.Append(tag, src))
}

func indexSpecial(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		switch src.At(i) {
		case '&', '<', '>':
			return i
		}
	}
	return -1
}
