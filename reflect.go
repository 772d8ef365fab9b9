// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom blocks built with MakeBlock must
// implement. Update is the stepper body: it reads control words from the
// current frame and writes every status word into the next.
type Updater interface {
	Update(b *Bench)
}

// MakeBlock builds a block specification from a struct with tagged word
// fields. The field tag must be `forge:"ctl"` or `forge:"sts"` to declare a
// control or status word. By default the word is named after the lowercased
// field name; a specific name can be forced by adding it in the tag:
// `forge:"ctl,sel"`. Word fields must be of type int, buses of type [n]int.
//
// At mount time a fresh instance of the struct is allocated, the tagged
// fields are set to the assigned word slots and the instance becomes the
// block's stepper. If the struct implements a Reset method, it is called on
// bench reset.
//
// The argument only carries the type, a nil pointer does fine:
//
//	var selSpec = forge.MakeBlock((*selector)(nil))
func MakeBlock(u Updater) *BlockSpec {
	typ := reflect.TypeOf(u)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for a block", k))
	}

	sp := &BlockSpec{
		Name: typ.Name(),
	}
	for i, n := 0, typ.NumField(); i < n; i++ {
		f := typ.Field(i)
		name, isCtl, ok := parseWordTag(f)
		if !ok {
			continue
		}
		var ws []string
		switch k := f.Type.Kind(); {
		case k == reflect.Array && f.Type.Elem().Kind() == reflect.Int:
			for j := 0; j < f.Type.Len(); j++ {
				ws = append(ws, busWordName(name, j))
			}
		case k == reflect.Int:
			ws = []string{name}
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name()))
		}
		if isCtl {
			sp.Controls = append(sp.Controls, ws...)
		} else {
			sp.Statuses = append(sp.Statuses, ws...)
		}
	}
	sp.Mount = mountStruct(typ)
	return sp
}

func parseWordTag(f reflect.StructField) (name string, isCtl, ok bool) {
	tag, ok := f.Tag.Lookup("forge")
	if !ok {
		return "", false, false
	}
	name = strings.ToLower(f.Name)
	tv := strings.Split(tag, ",")
	if len(tv) == 2 && tv[1] != "" {
		name = tv[1]
	}
	switch tv[0] {
	case "ctl":
		return name, true, true
	case "sts":
		return name, false, true
	}
	panic(errors.Errorf("unsupported tag %q for field %q", tag, f.Name))
}

func mountStruct(typ reflect.Type) MountFn {
	return func(s *Socket) []Stepper {
		v := reflect.New(typ)
		e := v.Elem()
		for i, n := 0, typ.NumField(); i < n; i++ {
			f := typ.Field(i)
			name, _, ok := parseWordTag(f)
			if !ok {
				continue
			}
			fv := e.Field(i)
			if f.Type.Kind() == reflect.Array {
				for j := 0; j < fv.Len(); j++ {
					fv.Index(j).SetInt(int64(s.Slot(busWordName(name, j))))
				}
			} else {
				fv.SetInt(int64(s.Slot(name)))
			}
		}
		return []Stepper{madeBlock{v.Interface().(Updater)}}
	}
}

// madeBlock adapts an Updater to the Stepper interface.
type madeBlock struct {
	u Updater
}

func (m madeBlock) Step(b *Bench) { m.u.Update(b) }

func (m madeBlock) Reset() {
	if r, ok := m.u.(interface{ Reset() }); ok {
		r.Reset()
	}
}
