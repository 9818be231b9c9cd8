package counter_test

import (
	"testing"

	"github.com/go-theft-auto/multishape/counter"
)

type recordingNavigator struct {
	targets []string
}

func (n *recordingNavigator) Replace(target string) {
	n.targets = append(n.targets, target)
}

func TestCounter(t *testing.T) {
	tests := []struct {
		name  string
		start int
		ops   string // i = increment, d = decrement
		want  int
	}{
		{"decrement at zero", 0, "d", 0},
		{"increment then decrement", 0, "id", 0},
		{"three increments", 0, "iii", 3},
		{"floor holds", 1, "dddi", 1},
		{"negative start clamps", -4, "", 0},
		{"start value kept", 7, "d", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := counter.New(tt.start, "", &recordingNavigator{}, nil)
			for _, op := range tt.ops {
				switch op {
				case 'i':
					c.Increment()
				case 'd':
					c.Decrement()
				}
			}
			if got := c.Value(); got != tt.want {
				t.Errorf("Value = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetClamps(t *testing.T) {
	c := counter.New(0, "", &recordingNavigator{}, nil)
	c.Set(12)
	if c.Value() != 12 {
		t.Errorf("Value = %d, want 12", c.Value())
	}
	c.Set(-1)
	if c.Value() != 0 {
		t.Errorf("Value = %d, want 0", c.Value())
	}
}

func TestConfirm(t *testing.T) {
	nav := &recordingNavigator{}
	c := counter.New(2, "", nav, nil)
	c.Confirm()

	if len(nav.targets) != 1 || nav.targets[0] != counter.DefaultTarget {
		t.Fatalf("targets = %q, want [%q]", nav.targets, counter.DefaultTarget)
	}

	nav = &recordingNavigator{}
	c = counter.New(0, "cart", nav, nil)
	c.Confirm()
	if len(nav.targets) != 1 || nav.targets[0] != "cart" {
		t.Errorf("targets = %q, want [cart]", nav.targets)
	}
}
