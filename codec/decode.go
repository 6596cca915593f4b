package codec

import (
	"reflect"
	"unicode/utf8"

	"github.com/wippyai/displaywire"
	"github.com/wippyai/displaywire/codec/internal/plan"
	"github.com/wippyai/displaywire/errors"
	"go.uber.org/zap"
)

// decodeValue reads into the settable v according to p. Source and field
// errors are returned unchanged; v may be partially written on failure.
func decodeValue(p *plan.Type, v reflect.Value, src displaywire.Source) error {
	switch p.Kind {
	case plan.KindBool:
		b, err := src.ReadU8()
		if err != nil {
			return err
		}
		if b > 1 {
			return errors.InvalidData(errors.PhaseDecode, nil, "bool byte is neither 0 nor 1")
		}
		v.SetBool(b == 1)
	case plan.KindU8:
		b, err := src.ReadU8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(b))
	case plan.KindS8:
		b, err := src.ReadU8()
		if err != nil {
			return err
		}
		v.SetInt(int64(int8(b)))
	case plan.KindU16:
		n, err := src.ReadU16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
	case plan.KindS16:
		n, err := src.ReadU16()
		if err != nil {
			return err
		}
		v.SetInt(int64(int16(n)))
	case plan.KindU32:
		n, err := src.ReadU32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
	case plan.KindS32:
		n, err := src.ReadU32()
		if err != nil {
			return err
		}
		v.SetInt(int64(int32(n)))
	case plan.KindU64:
		n, err := src.ReadU64()
		if err != nil {
			return err
		}
		v.SetUint(n)
	case plan.KindS64:
		n, err := src.ReadU64()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case plan.KindF32:
		f, err := src.ReadF32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
	case plan.KindF64:
		f, err := src.ReadF64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case plan.KindString:
		data, err := src.ReadBytes()
		if err != nil {
			return err
		}
		if !utf8.Valid(data) {
			return errors.InvalidUTF8(errors.PhaseDecode, nil, data)
		}
		v.SetString(string(data))
	case plan.KindBytes:
		data, err := src.ReadBytes()
		if err != nil {
			return err
		}
		v.SetBytes(data)
	case plan.KindArray:
		for i := 0; i < p.Len; i++ {
			if err := decodeValue(p.Elem, v.Index(i), src); err != nil {
				return err
			}
		}
	case plan.KindRecord, plan.KindTuple:
		return decodeFields(p.Fields, v, src)
	case plan.KindUnion:
		return decodeUnion(p, v, src)
	case plan.KindEnum:
		return decodeEnum(p, v, src)
	case plan.KindUnit:
	case plan.KindCustom:
		return v.Addr().Interface().(Unmarshaler).UnmarshalWire(src)
	default:
		return errors.Unsupported(errors.PhaseDecode, nil, v.Type().String(), p.Kind.String())
	}
	return nil
}

func decodeFields(fields []plan.Field, v reflect.Value, src displaywire.Source) error {
	for i := range fields {
		f := &fields[i]
		if err := decodeValue(f.Type, v.Field(f.Index), src); err != nil {
			return err
		}
	}
	return nil
}

func readDiscriminant(p *plan.Type, src displaywire.Source) (*plan.Case, error) {
	disc, err := src.ReadU8()
	if err != nil {
		return nil, err
	}
	cs := p.CaseByDisc(disc)
	if cs == nil {
		Logger().Debug("unknown variant",
			zap.String("type", p.Name),
			zap.Uint8("discriminant", disc),
			zap.Int("variants", len(p.Cases)),
		)
		return nil, errors.UnknownVariant(p.Name, disc, len(p.Cases))
	}
	return cs, nil
}

func decodeUnion(p *plan.Type, v reflect.Value, src displaywire.Source) error {
	cs, err := readDiscriminant(p, src)
	if err != nil {
		return err
	}

	field := v.Field(cs.Index)
	elem := reflect.New(field.Type().Elem())
	if !cs.Unit() {
		if err := decodeValue(cs.Type, elem.Elem(), src); err != nil {
			return err
		}
	}
	field.Set(elem)
	return nil
}

func decodeEnum(p *plan.Type, v reflect.Value, src displaywire.Source) error {
	cs, err := readDiscriminant(p, src)
	if err != nil {
		return err
	}
	if v.CanUint() {
		v.SetUint(uint64(cs.Disc))
	} else {
		v.SetInt(int64(cs.Disc))
	}
	return nil
}
