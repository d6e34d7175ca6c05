package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Milk", "milk"},
		{"  Whole   Milk ", "milk"},
		{"Fresh Basil", "basil"},
		{"Canned Tomatoes", "tomatoes"},
		{"Cheddar Cheese - 8oz block", "cheddar cheese"},
		{"RICE", "rice"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		match bool
	}{
		{"2% Milk", "milk", true},
		{"Skim Milk", "milk", true},
		{"Coconut Milk", "coconut milk", true},
		{"Buttermilk", "buttermilk", true},
		{"Jasmine Rice", "rice", true},
		{"Rice Noodles", "rice noodles", true},
		{"Large Eggs", "eggs", true},
		{"Sourdough Bread", "bread", true},
		{"Bread Crumbs", "bread crumbs", true},
		{"Dinner Rolls", "bread", true},
		{"All-Purpose Flour", "flour", true},
		{"Chicken Breast", "", false},
	}

	for _, tt := range tests {
		got, ok := Group(tt.in)
		if ok != tt.match || got != tt.want {
			t.Errorf("Group(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.match)
		}
	}
}

func TestSame(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Milk", "Milk", true},
		{"Milk", "2% Milk", true},
		{"Milk", "Whole Milk", true},
		{"Milk", "Coconut Milk", false},
		{"Milk", "Buttermilk", false},
		{"Bread", "Sourdough Bread", true},
		{"Bread", "Bread Crumbs", false},
		{"Bread", "Baguette", true},
		{"Rice", "Jasmine Rice", true},
		{"Rice", "Rice Noodles", false},
		{"Eggs", "Egg", true},
		{"Eggs", "Large Eggs", true},
		{"Cheese", "Cheddar Cheese", true},
		{"Chicken", "Chicken Breast", true},
		{"Soy Sauce", "Dark Soy Sauce", true},
		{"Flour", "All-Purpose Flour", true},
		{"Lime", "Lemon", false},
		{"Corn", "Cornstarch", false},
		{"Butter", "Peanut Butter", true}, // single word matches compound
	}

	for _, tt := range tests {
		if got := Same(tt.a, tt.b); got != tt.want {
			t.Errorf("Same(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestProductKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Whole Milk", "whole-milk"},
		{"Ben & Jerry's Ice Cream", "ben-jerrys-ice-cream"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := ProductKey(tt.in); got != tt.want {
			t.Errorf("ProductKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
