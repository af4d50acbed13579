package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sxyafiq/fixedid"
)

// described is the width-independent view of an identifier printed by the
// parse, convert and new commands.
type described struct {
	Type      string `json:"type"`
	Bits      int    `json:"bits"`
	Canonical string `json:"canonical,omitempty"`
	Base64    string `json:"base64"`
	Hex       string `json:"hex"`
	Hash      string `json:"hash"`
	Nil       bool   `json:"nil"`
	Version   int    `json:"version,omitempty"`
}

func describe[T fixedid.Identifier[T]](id T) described {
	l := id.Layout()
	return described{
		Type:   l.Name,
		Bits:   l.Bits,
		Base64: id.Base64(),
		Hex:    hex.EncodeToString(id.Bytes()),
		Hash:   fmt.Sprintf("%016x", id.Hash()),
		Nil:    id.IsNil(),
	}
}

func describeGUID(g fixedid.GUID) described {
	d := describe(g)
	d.Canonical = g.String()
	d.Version = int(g.Version())
	return d
}

// decodeAny recognizes an identifier by the length of its text: the
// canonical GUID form, base64 of any width, or plain hex of any width.
// GUIDs additionally accept braces and a urn:uuid: prefix.
func decodeAny(s string) (described, error) {
	s = strings.TrimSpace(s)

	switch len(s) {
	case fixedid.GUIDStringLen:
		g, err := fixedid.ParseGUID(s)
		return describeGUID(g), err
	case fixedid.LayoutGUID.EncodedLength():
		g, err := fixedid.ParseGUIDBase64(s)
		return describeGUID(g), err
	case fixedid.LayoutUUID.EncodedLength():
		u, err := fixedid.ParseUUIDBase64(s)
		return describe(u), err
	case fixedid.LayoutID.EncodedLength():
		id, err := fixedid.ParseIDBase64(s)
		return describe(id), err
	case 2 * fixedid.UUIDSize:
		b, err := hex.DecodeString(s)
		if err != nil {
			return described{}, fmt.Errorf("%w: %v", fixedid.ErrInvalidCharacter, err)
		}
		u, err := fixedid.ParseUUIDBytes(b)
		return describe(u), err
	case 2 * fixedid.IDSize:
		b, err := hex.DecodeString(s)
		if err != nil {
			return described{}, fmt.Errorf("%w: %v", fixedid.ErrInvalidCharacter, err)
		}
		id, err := fixedid.ParseIDBytes(b)
		return describe(id), err
	}

	g, err := fixedid.ParseGUIDLenient(s)
	if err != nil {
		return described{}, fmt.Errorf("unrecognized identifier %q: %w", s, err)
	}
	return describeGUID(g), nil
}

// render returns d in the named format. An empty format picks the natural
// form: canonical for GUIDs, base64 otherwise.
func render(d described, format string) (string, error) {
	switch strings.ToLower(format) {
	case "":
		if d.Canonical != "" {
			return d.Canonical, nil
		}
		return d.Base64, nil
	case "canonical", "c":
		if d.Canonical == "" {
			return "", fmt.Errorf("%s has no canonical form, use base64 or hex", d.Type)
		}
		return d.Canonical, nil
	case "base64", "b64":
		return d.Base64, nil
	case "hex", "x":
		return d.Hex, nil
	default:
		return "", fmt.Errorf("unknown format %q (want canonical, base64 or hex)", format)
	}
}
