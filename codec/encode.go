package codec

import (
	"fmt"
	"reflect"

	"github.com/wippyai/displaywire"
	"github.com/wippyai/displaywire/codec/internal/plan"
	"github.com/wippyai/displaywire/errors"
)

// encodeValue writes v according to p. Sink and field errors are returned
// unchanged.
func encodeValue(p *plan.Type, v reflect.Value, sink displaywire.Sink) error {
	switch p.Kind {
	case plan.KindBool:
		if v.Bool() {
			return sink.WriteU8(1)
		}
		return sink.WriteU8(0)
	case plan.KindU8:
		return sink.WriteU8(uint8(v.Uint()))
	case plan.KindS8:
		return sink.WriteU8(uint8(v.Int()))
	case plan.KindU16:
		return sink.WriteU16(uint16(v.Uint()))
	case plan.KindS16:
		return sink.WriteU16(uint16(v.Int()))
	case plan.KindU32:
		return sink.WriteU32(uint32(v.Uint()))
	case plan.KindS32:
		return sink.WriteU32(uint32(v.Int()))
	case plan.KindU64:
		return sink.WriteU64(v.Uint())
	case plan.KindS64:
		return sink.WriteU64(uint64(v.Int()))
	case plan.KindF32:
		return sink.WriteF32(float32(v.Float()))
	case plan.KindF64:
		return sink.WriteF64(v.Float())
	case plan.KindString:
		return sink.WriteBytes([]byte(v.String()))
	case plan.KindBytes:
		return sink.WriteBytes(v.Bytes())
	case plan.KindArray:
		for i := 0; i < p.Len; i++ {
			if err := encodeValue(p.Elem, v.Index(i), sink); err != nil {
				return err
			}
		}
		return nil
	case plan.KindRecord, plan.KindTuple:
		return encodeFields(p.Fields, v, sink)
	case plan.KindUnion:
		return encodeUnion(p, v, sink)
	case plan.KindEnum:
		return encodeEnum(p, v, sink)
	case plan.KindUnit:
		return nil
	case plan.KindCustom:
		return encodeCustom(v, sink)
	default:
		return errors.Unsupported(errors.PhaseEncode, nil, v.Type().String(), p.Kind.String())
	}
}

func encodeFields(fields []plan.Field, v reflect.Value, sink displaywire.Sink) error {
	for i := range fields {
		f := &fields[i]
		if err := encodeValue(f.Type, v.Field(f.Index), sink); err != nil {
			return err
		}
	}
	return nil
}

func encodeUnion(p *plan.Type, v reflect.Value, sink displaywire.Sink) error {
	var active *plan.Case
	for i := range p.Cases {
		cs := &p.Cases[i]
		if v.Field(cs.Index).IsNil() {
			continue
		}
		if active != nil {
			return errors.InvalidVariant(p.Name,
				fmt.Sprintf("variants %s and %s are both set", active.Name, cs.Name))
		}
		active = cs
	}
	if active == nil {
		return errors.InvalidVariant(p.Name, "no variant is set")
	}

	if err := sink.WriteU8(active.Disc); err != nil {
		return err
	}
	if active.Unit() {
		return nil
	}
	return encodeValue(active.Type, v.Field(active.Index).Elem(), sink)
}

func encodeEnum(p *plan.Type, v reflect.Value, sink displaywire.Sink) error {
	var disc uint64
	if v.CanUint() {
		disc = v.Uint()
	} else {
		n := v.Int()
		if n < 0 {
			return errors.InvalidVariant(p.Name, fmt.Sprintf("value %d is not a declared case", n))
		}
		disc = uint64(n)
	}
	if disc >= uint64(len(p.Cases)) {
		return errors.InvalidVariant(p.Name, fmt.Sprintf("value %d is not a declared case", disc))
	}
	return sink.WriteU8(uint8(disc))
}

func encodeCustom(v reflect.Value, sink displaywire.Sink) error {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m.MarshalWire(sink)
		}
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m.MarshalWire(sink)
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr.Interface().(Marshaler).MarshalWire(sink)
}
