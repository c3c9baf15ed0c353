package generator

import (
	"time"

	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
)

// KeyPress emits exactly two back-to-back events on the hardware key input
// property: ACTION_DOWN then ACTION_UP, each carrying
// [action, keyCode, displayID]. One-shot; there is nothing to stop.
func KeyPress(p *pool.Pool, emit EmitFunc, keyCode, displayID int32) {
	for _, action := range []int32{model.KeyActionDown, model.KeyActionUp} {
		r := p.Obtain()
		v := r.Value()
		v.Prop = model.HwKeyInput
		v.Timestamp = time.Now().UnixNano()
		v.Value.Int32Values = append(v.Value.Int32Values, action, keyCode, displayID)
		emit(r)
	}
}
