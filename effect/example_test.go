package effect_test

import (
	"fmt"

	"github.com/oligo/rteffect"
	"github.com/oligo/rteffect/effect"
	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

func Example() {
	doc := rteffect.NewDocument("groceries\nmilk\neggs")
	effects := effect.NewEffects()

	enable := true
	sel := paragraph.Selection{Start: 10, End: 19}
	if err := effects.Bullet.Apply(doc, &sel, &enable); err != nil {
		fmt.Println(err)
		return
	}

	// a new item typed after the last one.
	_ = doc.InsertText(19, "\nbread")
	if err := effects.Normalize(doc); err != nil {
		fmt.Println(err)
		return
	}

	for _, s := range doc.Spans().All(span.Bullet) {
		fmt.Println(s)
	}
	// Output:
	// bullet[10,15)=true
	// bullet[15,20)=true
	// bullet[20,25)=true
}
