// Package item models the stackable goods a player gathers and machines
// convert: kinds, stacks, slots and slot inventories.
package item

import "fmt"

// MaxStack is the largest count a single stack may hold, for every kind.
const MaxStack = 64

// Kind identifies an item type. The zero value is not a valid kind.
type Kind uint8

const (
	Wood Kind = iota + 1
	Stone
	IronOre
	CopperOre
	IronBar
	CopperBar
)

// Kinds lists every valid kind in presentation order.
var Kinds = []Kind{Wood, Stone, IronOre, CopperOre, IronBar, CopperBar}

var kindNames = map[Kind]string{
	Wood:      "wood",
	Stone:     "stone",
	IronOre:   "iron_ore",
	CopperOre: "copper_ore",
	IronBar:   "iron_bar",
	CopperBar: "copper_bar",
}

// String returns the snake_case name used in config files and messages.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// MaxStack returns the stack cap for k.
func (k Kind) MaxStack() int { return MaxStack }

// ParseKind converts a name such as "iron_ore" back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown item kind %q", name)
}

// Stack is a quantity of one kind. A Stack with Count <= 0 is empty; an empty
// stack is never stored in a Slot.
type Stack struct {
	Kind  Kind
	Count int
}

// NewStack returns a stack of n units of k.
func NewStack(k Kind, n int) Stack { return Stack{Kind: k, Count: n} }

// Empty reports whether s holds nothing.
func (s Stack) Empty() bool { return s.Count <= 0 }

// Room returns how many more units of the same kind s can absorb.
func (s Stack) Room() int {
	if s.Empty() {
		return MaxStack
	}
	return s.Kind.MaxStack() - s.Count
}

func (s Stack) String() string {
	if s.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%d %s", s.Count, s.Kind)
}
