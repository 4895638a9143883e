package main

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/fontmerge/internal/testfont"
	"seehuhn.de/go/sfnt"
)

func main() {
	font := testfont.New("Test", map[rune]funit.Int16{'A': 500})
	buf := &bytes.Buffer{}
	if _, err := font.Write(buf); err != nil {
		fmt.Println("WRITE ERROR:", err)
		return
	}
	fmt.Println("written bytes:", buf.Len())
	back, err := sfnt.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Println("READ ERROR:", err)
		return
	}
	fmt.Println("units per em:", back.UnitsPerEm)
	fmt.Println("num glyphs:", back.NumGlyphs())
	sub, err := back.CMapTable.GetBest()
	if err != nil {
		fmt.Println("CMAP ERROR:", err)
		return
	}
	fmt.Println("lookup A:", sub.Lookup('A'))
}
