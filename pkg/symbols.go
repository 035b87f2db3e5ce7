package tinylang

import "strconv"

// SymbolMap registers variables in declaration order. The position of a name
// is its identity: the variable declared at position i is emitted as the
// .data label "V<i>". Registration is insertion-only; duplicates are the
// caller's error to raise.
type SymbolMap struct {
	names   []string
	indices map[string]int
}

func NewSymbolMap() *SymbolMap {
	return &SymbolMap{
		indices: make(map[string]int),
	}
}

// Exists reports whether name has been registered.
func (m *SymbolMap) Exists(name string) bool {
	_, ok := m.indices[name]
	return ok
}

// Add registers name at the next position.
func (m *SymbolMap) Add(name string) {
	m.indices[name] = len(m.names)
	m.names = append(m.names, name)
}

// Label returns the .data label for a registered name.
func (m *SymbolMap) Label(name string) string {
	return m.LabelAt(m.indices[name])
}

// LabelAt returns the .data label for position i.
func (m *SymbolMap) LabelAt(i int) string {
	return "V" + strconv.Itoa(i)
}

// Size returns the number of registered variables.
func (m *SymbolMap) Size() int {
	return len(m.names)
}

// FuncMap registers user-defined functions in declaration order, together
// with their parameter name lists. The function declared at position i is
// emitted as the label "FUNC<i>". A function is registered by name when its
// header is parsed, before its body, so self-referential calls are legal;
// the parameter list is attached once USING has been consumed.
type FuncMap struct {
	names   []string
	indices map[string]int
	params  map[string][]string
}

func NewFuncMap() *FuncMap {
	return &FuncMap{
		indices: make(map[string]int),
		params:  make(map[string][]string),
	}
}

// Exists reports whether name has been registered.
func (m *FuncMap) Exists(name string) bool {
	_, ok := m.indices[name]
	return ok
}

// Add registers name at the next position, with no parameters.
func (m *FuncMap) Add(name string) {
	m.indices[name] = len(m.names)
	m.names = append(m.names, name)
}

// SetParams attaches the ordered parameter list to a registered function.
func (m *FuncMap) SetParams(name string, params []string) {
	m.params[name] = params
}

// Params returns the ordered parameter list of a registered function.
func (m *FuncMap) Params(name string) []string {
	return m.params[name]
}

// Label returns the branch label for a registered name.
func (m *FuncMap) Label(name string) string {
	return "FUNC" + strconv.Itoa(m.indices[name])
}

// paramOffset returns the stack offset, in bytes, at which the named
// parameter can be loaded inside a function body. Arguments are pushed in
// declaration order, so the offset counts back from the end of the list.
func paramOffset(params []string, name string) (int, bool) {
	for i, param := range params {
		if param == name {
			return (len(params) - i) * 8, true
		}
	}

	return 0, false
}

// LabelSet registers user-defined GOTO targets in declaration order.
// Insertion-only; duplicates are the caller's error to raise.
type LabelSet struct {
	names []string
	seen  map[string]bool
}

func NewLabelSet() *LabelSet {
	return &LabelSet{
		seen: make(map[string]bool),
	}
}

// Exists reports whether name has been declared.
func (s *LabelSet) Exists(name string) bool {
	return s.seen[name]
}

// Add declares name.
func (s *LabelSet) Add(name string) {
	s.seen[name] = true
	s.names = append(s.names, name)
}

// StringPool deduplicates string literals and assigns each distinct text an
// insertion-order position. The literal at position i is emitted as the
// .data label "S<i>".
type StringPool struct {
	texts   []string
	indices map[string]int
}

func NewStringPool() *StringPool {
	return &StringPool{
		indices: make(map[string]int),
	}
}

// Intern returns the position of text, adding it if it has not been seen.
func (p *StringPool) Intern(text string) int {
	if i, ok := p.indices[text]; ok {
		return i
	}

	i := len(p.texts)
	p.indices[text] = i
	p.texts = append(p.texts, text)

	return i
}

// Label returns the .data label for position i.
func (p *StringPool) Label(i int) string {
	return "S" + strconv.Itoa(i)
}

// Texts returns the interned literals in insertion order.
func (p *StringPool) Texts() []string {
	return p.texts
}
