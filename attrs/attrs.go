/*
X2 attribute dictionary (%TF / %TA / %TO / %TD commands and their
"G04 #@! ..." structured-comment equivalents).

The geometry compiler only attaches snapshots of the current object
attributes to the items it produces; the payload stays opaque to it.
*/
package attrs

import (
	"strings"
)

// NetAttributes is the snapshot of the object-level (%TO) attributes
// in force when a draw item is created.
type NetAttributes struct {
	Net    string // TO.N
	RefDes string // TO.C
	Pad    string // TO.P
	Others map[string]string
}

func (na *NetAttributes) Empty() bool {
	if na == nil {
		return true
	}
	return na.Net == "" && na.RefDes == "" && na.Pad == "" && len(na.Others) == 0
}

// Dict is the per-stream attribute dictionary.
type Dict struct {
	file     map[string]string // %TF, immutable once set
	aperture map[string]string // %TA, cleared by %TD
	object   NetAttributes     // %TO, cleared by %TD

	// AperFunction is kept separately because every produced item
	// inherits it (TA.AperFunction).
	AperFunction string
}

func NewDict() *Dict {
	return &Dict{
		file:     make(map[string]string),
		aperture: make(map[string]string),
		object:   NetAttributes{Others: make(map[string]string)},
	}
}

// FileAttribute returns a %TF value, for example "FileFunction".
func (d *Dict) FileAttribute(name string) string {
	return d.file[name]
}

// ObjectAttributes returns a snapshot of the current %TO state, or
// nil when no object attribute is in force.
func (d *Dict) ObjectAttributes() *NetAttributes {
	if d.object.Empty() {
		return nil
	}
	snap := d.object
	snap.Others = make(map[string]string, len(d.object.Others))
	for k, v := range d.object.Others {
		snap.Others[k] = v
	}
	return &snap
}

// Execute applies one attribute command. kind is the two-letter
// command id ("TF", "TA", "TO" or "TD"), body the comma separated
// name,value list with the leading '.' of standard names kept.
func (d *Dict) Execute(kind, body string) bool {
	body = strings.TrimSuffix(strings.TrimSpace(body), "*")
	name, value := splitAttr(body)
	switch kind {
	case "TF":
		d.file[strings.TrimPrefix(name, ".")] = value
	case "TA":
		n := strings.TrimPrefix(name, ".")
		d.aperture[n] = value
		if n == "AperFunction" {
			d.AperFunction = value
		}
	case "TO":
		switch strings.TrimPrefix(name, ".") {
		case "N":
			d.object.Net = value
		case "C":
			d.object.RefDes = value
		case "P":
			d.object.Pad = value
		default:
			d.object.Others[strings.TrimPrefix(name, ".")] = value
		}
	case "TD":
		d.delete(strings.TrimPrefix(name, "."))
	default:
		return false
	}
	return true
}

// ExecuteComment handles a "G04 #@! <attr>" structured comment; it
// returns false when the comment carries no X2 metadata.
func (d *Dict) ExecuteComment(comment string) bool {
	comment = strings.TrimSpace(comment)
	if !strings.HasPrefix(comment, "#@!") {
		return false
	}
	comment = strings.TrimSpace(comment[3:])
	if len(comment) < 2 {
		return false
	}
	return d.Execute(comment[:2], comment[2:])
}

// delete implements %TD: an empty name clears everything deletable
// (aperture and object attributes; file attributes are immutable).
func (d *Dict) delete(name string) {
	if name == "" {
		d.aperture = make(map[string]string)
		d.AperFunction = ""
		d.object = NetAttributes{Others: make(map[string]string)}
		return
	}
	delete(d.aperture, name)
	if name == "AperFunction" {
		d.AperFunction = ""
	}
	switch name {
	case "N":
		d.object.Net = ""
	case "C":
		d.object.RefDes = ""
	case "P":
		d.object.Pad = ""
	default:
		delete(d.object.Others, name)
	}
}

func splitAttr(body string) (string, string) {
	if at := strings.IndexByte(body, ','); at != -1 {
		return body[:at], body[at+1:]
	}
	return body, ""
}
