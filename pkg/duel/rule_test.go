package duel

import "testing"

func TestMajorityRule(t *testing.T) {
	cases := []struct {
		name   string
		self   CellState
		a, b   int
		expect CellState
	}{
		{"birth majority red", Empty, 2, 1, ColorA},
		{"birth majority blue", Empty, 1, 2, ColorB},
		{"birth all red", Empty, 3, 0, ColorA},
		{"birth all blue", Empty, 0, 3, ColorB},
		{"live recolored by majority", ColorA, 0, 3, ColorB},
		{"live keeps color under majority", ColorB, 1, 2, ColorB},
		{"red survives with two", ColorA, 1, 1, ColorA},
		{"blue survives with two red", ColorB, 2, 0, ColorB},
		{"empty stays empty with two", Empty, 2, 0, Empty},
		{"isolation", ColorA, 0, 0, Empty},
		{"loneliness", ColorA, 1, 0, Empty},
		{"overcrowded four", ColorA, 2, 2, Empty},
		{"overcrowded eight", ColorB, 4, 4, Empty},
		{"empty with one", Empty, 0, 1, Empty},
		{"empty with five", Empty, 5, 0, Empty},
	}
	for _, tc := range cases {
		if got := Majority(tc.self, tc.a, tc.b); got != tc.expect {
			t.Fatalf("%s: Majority(%v, %d, %d) = %v, expected %v", tc.name, tc.self, tc.a, tc.b, got, tc.expect)
		}
	}
}
