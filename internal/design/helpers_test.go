package design

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// allowUnexported lets cmp look inside Number, Optional and Node.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

func window(class string, children ...*Node) *Node {
	return (&Node{Class: class, Kind: KindWindow}).Append(children...)
}

func text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

func mustRegistry(t interface{ Fatalf(string, ...any) }, nodes ...*Node) *Registry {
	r, err := NewRegistry(nodes...)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}
