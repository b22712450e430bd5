package fontset

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// The Go font family ships with the binary; these faces are
// memory-resident, so they enumerate with an empty file path.
var embeddedFaces = [][]byte{
	goregular.TTF,
	gobold.TTF,
	gobolditalic.TTF,
	goitalic.TTF,
	gomedium.TTF,
	gomediumitalic.TTF,
	gosmallcaps.TTF,
	gosmallcapsitalic.TTF,
	gomono.TTF,
	gomonobold.TTF,
	gomonobolditalic.TTF,
	gomonoitalic.TTF,
}
