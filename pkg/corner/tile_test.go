package corner

import (
	"image"
	"testing"

	"pgregory.net/rapid"
)

func solidTile(dim int, a, b, c, d Code) *Tile {
	return NewTile(image.NewRGBA(image.Rect(0, 0, dim, dim)), a, b, c, d)
}

func TestNewTile_EdgeDerivation(t *testing.T) {
	tile := solidTile(4, R, G, B, Y)

	tests := []struct {
		dir  Direction
		want Edge
	}{
		{North, Edge{R, G}},
		{East, Edge{G, Y}},
		{South, Edge{B, Y}},
		{West, Edge{R, B}},
	}

	for _, tt := range tests {
		if got := tile.Edge(tt.dir); got != tt.want {
			t.Errorf("Edge(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestIsConnectable(t *testing.T) {
	// V4's first two tiles per Figure 7(a): (R,G,B,Y) then (G,B,Y,R).
	// (R,G,B,Y).East = (G,Y); (G,B,Y,R).West = (G,Y) -> connectable East/West.
	left := solidTile(4, R, G, B, Y)
	right := solidTile(4, G, B, Y, R)

	if !left.IsConnectable(East, right) {
		t.Error("expected (R,G,B,Y) connectable East to (G,B,Y,R)")
	}
	if !right.IsConnectable(West, left) {
		t.Error("expected symmetry: (G,B,Y,R) connectable West to (R,G,B,Y)")
	}

	unrelated := solidTile(4, R, R, R, R)
	if left.IsConnectable(East, unrelated) {
		t.Error("expected (R,G,B,Y) not connectable East to an all-R tile")
	}
}

// TestIsConnectable_Symmetry checks invariant 6: A.is_connectable(dir, B)
// iff B.is_connectable(opposite(dir), A), for arbitrary corner tuples.
func TestIsConnectable_Symmetry(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		codeGen := rapid.IntRange(0, 3).Map(func(i int) Code { return Code(i) })

		a := solidTile(2, codeGen.Draw(rt, "a1"), codeGen.Draw(rt, "a2"), codeGen.Draw(rt, "a3"), codeGen.Draw(rt, "a4"))
		b := solidTile(2, codeGen.Draw(rt, "b1"), codeGen.Draw(rt, "b2"), codeGen.Draw(rt, "b3"), codeGen.Draw(rt, "b4"))
		dir := Direction(rapid.IntRange(0, 3).Draw(rt, "dir"))

		if a.IsConnectable(dir, b) != b.IsConnectable(dir.Opposite(), a) {
			t.Fatalf("symmetry violated for dir=%v: a.IsConnectable=%v b.IsConnectable=%v",
				dir, a.IsConnectable(dir, b), b.IsConnectable(dir.Opposite(), a))
		}
	})
}

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestTileSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ts      TileSet
		wantErr bool
	}{
		{"empty", TileSet{}, true},
		{"uniform", TileSet{solidTile(4, R, G, B, Y), solidTile(4, G, B, Y, R)}, false},
		{"mismatched dims", TileSet{solidTile(4, R, G, B, Y), solidTile(6, G, B, Y, R)}, true},
		{"odd dim", TileSet{solidTile(5, R, G, B, Y)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
