//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/voxmesh/api"
	"github.com/voxelsplace/voxmesh/collide"
)

func bytesArg(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

// voxg2glb(bytes, detail?, topology?) returns a Uint8Array or an error string.
func voxg2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing voxg bytes")
	}
	opts := api.Options{Collider: collide.Exact}
	topo := api.TopologyPoints
	if len(args) > 1 && args[1].Type() == js.TypeString {
		d, err := collide.ParseDetail(args[1].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		opts.Collider = d
	}
	if len(args) > 2 && args[2].Type() == js.TypeString {
		t, err := api.ParseTopology(args[2].String())
		if err != nil {
			return js.ValueOf(err.Error())
		}
		topo = t
	}
	out, err := api.VOXGToGLB(bytesArg(args[0]), opts, topo)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func main() {
	js.Global().Set("voxg2glb", js.FuncOf(voxg2glb))
	select {}
}
