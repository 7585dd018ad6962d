package domain

import "testing"

func TestComputeTotals_Scenario(t *testing.T) {
	items := []LineItem{
		{ProductName: "Custom T-Shirts", Quantity: 100, UnitPrice: 12.50},
		{ProductName: "Embroidered Polo Shirts", Quantity: 50, UnitPrice: 28.00},
		{ProductName: "Printed Tote Bags", Quantity: 200, UnitPrice: 8.75},
	}

	subtotal, tax, total := ComputeTotals(items, 8.5)
	if subtotal != 4400.00 {
		t.Fatalf("subtotal = %v, want 4400.00", subtotal)
	}
	if tax != 374.00 {
		t.Fatalf("tax = %v, want 374.00", tax)
	}
	if total != 4774.00 {
		t.Fatalf("total = %v, want 4774.00", total)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	subtotal, tax, total := ComputeTotals(nil, 8.5)
	if subtotal != 0 || tax != 0 || total != 0 {
		t.Fatalf("empty items should yield zeros, got %v %v %v", subtotal, tax, total)
	}
}

func TestComputeTotals_RoundsToCents(t *testing.T) {
	// 3 × 0.333 = 0.999; 10% tax = 0.0999 → 0.10; total 1.0989 → 1.10
	items := []LineItem{{ProductName: "Stickers", Quantity: 3, UnitPrice: 0.333}}

	subtotal, tax, total := ComputeTotals(items, 10)
	if subtotal != 0.999 {
		t.Fatalf("subtotal should stay unrounded, got %v", subtotal)
	}
	if tax != 0.10 {
		t.Fatalf("tax = %v, want 0.10", tax)
	}
	if total != 1.10 {
		t.Fatalf("total = %v, want 1.10", total)
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []LineItem{
		{ProductName: "Mugs", Quantity: 17, UnitPrice: 9.37},
		{ProductName: "Pens", Quantity: 250, UnitPrice: 1.19},
	}

	s1, x1, t1 := ComputeTotals(items, 7.25)
	for i := 0; i < 100; i++ {
		s2, x2, t2 := ComputeTotals(items, 7.25)
		if s1 != s2 || x1 != x2 || t1 != t2 {
			t.Fatalf("outputs changed between calls: (%v,%v,%v) vs (%v,%v,%v)", s1, x1, t1, s2, x2, t2)
		}
	}
}

func TestComputeTotals_ZeroRate(t *testing.T) {
	items := []LineItem{{ProductName: "Caps", Quantity: 10, UnitPrice: 5.00}}

	subtotal, tax, total := ComputeTotals(items, 0)
	if subtotal != 50 || tax != 0 || total != 50 {
		t.Fatalf("got %v %v %v, want 50 0 50", subtotal, tax, total)
	}
}

func TestDeriveInitials(t *testing.T) {
	cases := map[string]string{
		"Scott":          "S",
		"John Roberts":   "JR",
		"Mary Kim Lee":   "MK",
		"":               "",
		"  ann  bishop ": "AB",
	}
	for name, want := range cases {
		if got := DeriveInitials(name); got != want {
			t.Errorf("DeriveInitials(%q) = %q, want %q", name, got, want)
		}
	}
}
