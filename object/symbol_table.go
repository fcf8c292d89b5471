package object

import "klang/internals"

// Symbol is one row of the runtime table, the stored type tag plus the
// bound value. Only INTEGER is ever produced today, the tag check on
// rebinding still holds for any type added later.
type Symbol struct {
	Type  ObjectType
	Value Object
}

// SymbolTable is one flat store for the whole run. if/while/for bodies
// share it, there is no block scoping and no shadowing.
type SymbolTable struct {
	store map[string]Symbol
}

func NewSymbolTable() *SymbolTable {
	s := make(map[string]Symbol)
	return &SymbolTable{
		store: s,
	}
}

// AddOrUpdate inserts the name if absent, otherwise overwrites the
// value. Rebinding an existing name with a different type tag is
// rejected.
func (s *SymbolTable) AddOrUpdate(name string, val Object) *internals.Error {
	if existing, ok := s.store[name]; ok && existing.Type != val.Type() {
		return internals.Errorf(internals.TypeMismatch, "cannot rebind %s of type %s with a value of type %s", name, existing.Type, val.Type())
	}
	s.store[name] = Symbol{Type: val.Type(), Value: val}
	return nil
}

// Get never fails, callers that need the name to exist translate the
// miss into an UndefinedVariable themselves.
func (s *SymbolTable) Get(name string) (Object, bool) {
	sym, ok := s.store[name]
	if !ok {
		return nil, false
	}
	return sym.Value, true
}
