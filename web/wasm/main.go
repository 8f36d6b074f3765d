//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-modulation/internal/webdemo"
	"github.com/cwbudde/algo-modulation/modulation"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	js.Global().Set("algoModulation", newAPI())
	select {}
}

// newAPI builds the object exported as algoModulation.
func newAPI() js.Value {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		cfg := modulation.DefaultConfig()
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			cfg.Processor.SampleRate = args[0].Float()
		}
		if len(args) > 1 && args[1].Type() == js.TypeNumber {
			cfg.Processor.Duration = args[1].Float()
		}
		e, err := webdemo.NewEngine(cfg)
		if err != nil {
			return errorObject(err.Error())
		}
		engine = e
		return js.Null()
	}))

	api.Set("schemes", export(func(args []js.Value) any {
		infos := webdemo.Schemes()
		arr := js.Global().Get("Array").New(len(infos))
		for i, info := range infos {
			obj := js.Global().Get("Object").New()
			obj.Set("name", info.Name)
			obj.Set("family", info.Family)
			obj.Set("description", info.Description)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	api.Set("generate", export(func(args []js.Value) any {
		if len(args) < 1 {
			return errorObject("generate expects a parameter object")
		}
		if engine == nil {
			e, err := webdemo.NewEngine(modulation.DefaultConfig())
			if err != nil {
				return errorObject(err.Error())
			}
			engine = e
		}

		f, err := engine.Run(requestFrom(args[0]))
		if err != nil {
			return errorObject(err.Error())
		}
		return frameObject(f)
	}))

	return api
}

func requestFrom(p js.Value) webdemo.Request {
	req := webdemo.DefaultRequest()
	if v := p.Get("modulationType"); v.Type() == js.TypeString {
		req.ModulationType = v.String()
	}
	if v := p.Get("messageFrequency"); v.Type() == js.TypeNumber {
		req.MessageFrequency = v.Float()
	}
	if v := p.Get("messageAmplitude"); v.Type() == js.TypeNumber {
		req.MessageAmplitude = v.Float()
	}
	if v := p.Get("carrierFrequency"); v.Type() == js.TypeNumber {
		req.CarrierFrequency = v.Float()
	}
	if v := p.Get("carrierAmplitude"); v.Type() == js.TypeNumber {
		req.CarrierAmplitude = v.Float()
	}
	if v := p.Get("messageWaveform"); v.Type() == js.TypeString {
		req.MessageWaveform = v.String()
	}
	if v := p.Get("carrierWaveform"); v.Type() == js.TypeString {
		req.CarrierWaveform = v.String()
	}
	if v := p.Get("digitalMessage"); v.Type() == js.TypeString {
		req.DigitalMessage = v.String()
	}
	return req
}

func frameObject(f *webdemo.Frame) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("scheme", f.Scheme().String())
	if v, ok := f.Index.Value(); ok {
		obj.Set("index", v)
	} else {
		obj.Set("index", js.Null())
	}
	obj.Set("bits", modulation.FormatBits(f.Bits))
	obj.Set("time", float32Array(f.Time))
	obj.Set("carrier", float32Array(f.Carrier))
	obj.Set("modulated", float32Array(f.Modulated))
	obj.Set("peakFrequency", f.PeakFrequency)

	switch msg := f.Message.(type) {
	case modulation.BasebandIQ:
		obj.Set("i", float32Array(msg.I))
		obj.Set("q", float32Array(msg.Q))
	case modulation.Baseband:
		obj.Set("message", float32Array(msg.Samples))
	}
	return obj
}

func float32Array(values []float64) js.Value {
	arr := js.Global().Get("Float32Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, float32(v))
	}
	return arr
}

func errorObject(msg string) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("error", msg)
	return obj
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
