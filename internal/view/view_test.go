package view

import (
	"math"
	"reflect"
	"testing"
)

func homeAt(counter, width, height int) Home {
	return Home{Props: HomeProps{
		Counter:         counter,
		Viewport:        Rect{Width: width, Height: height},
		IncrementAmount: 10,
	}}
}

func TestBuildIsDeterministic(t *testing.T) {
	v := homeAt(42, 80, 24)
	first := Build(v)
	second := Build(v)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got\n%#v\n%#v", first, second)
	}
}

func TestHomeTexts(t *testing.T) {
	blocks := Build(homeAt(-7, 80, 24))
	want := []string{
		"Counter: -7",
		"Hit space to increment counter by 10",
		"Hit Left Arrow to decrement",
		"Hit Right Arrow to increment",
		"Hit q to quit",
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, text := range want {
		if blocks[i].Text != text {
			t.Fatalf("block %d: expected %q, got %q", i, text, blocks[i].Text)
		}
		if blocks[i].Align != AlignCenter {
			t.Fatalf("block %d: expected centered text", i)
		}
	}
	if blocks[0].Role != RoleCounter {
		t.Fatalf("expected counter role on first block, got %v", blocks[0].Role)
	}
	for _, b := range blocks[1:] {
		if b.Role != RoleHint {
			t.Fatalf("expected hint role for %q, got %v", b.Text, b.Role)
		}
	}
}

func TestHomeLayoutCentersContent(t *testing.T) {
	// 50 - 300/24 = 38 percent of 24 rows is 9 rows of padding.
	blocks := Build(homeAt(0, 80, 24))
	want := []Rect{
		{X: 0, Y: 9, Width: 80, Height: 2},
		{X: 0, Y: 11, Width: 80, Height: 1},
		{X: 0, Y: 12, Width: 80, Height: 1},
		{X: 0, Y: 13, Width: 80, Height: 1},
		{X: 0, Y: 14, Width: 80, Height: 1},
	}
	for i, r := range want {
		if blocks[i].Rect != r {
			t.Fatalf("block %d: expected rect %+v, got %+v", i, r, blocks[i].Rect)
		}
	}
}

func TestHomeLayoutHonoursViewportOrigin(t *testing.T) {
	v := Home{Props: HomeProps{Viewport: Rect{X: 3, Y: 2, Width: 40, Height: 24}, IncrementAmount: 1}}
	blocks := Build(v)
	if got := blocks[0].Rect; got != (Rect{X: 3, Y: 11, Width: 40, Height: 2}) {
		t.Fatalf("unexpected counter rect %+v", got)
	}
}

func TestPadPercentClampsSmallHeights(t *testing.T) {
	cases := map[int]int{
		-3:  0,
		0:   0,
		1:   0,
		5:   0,
		6:   0,
		7:   8,
		24:  38,
		300: 49,
		600: 50,
	}
	for height, want := range cases {
		if got := padPercent(height); got != want {
			t.Fatalf("padPercent(%d): expected %d, got %d", height, want, got)
		}
	}
}

func TestSmallViewportsNeverProduceNegativeBands(t *testing.T) {
	for height := 0; height <= 8; height++ {
		blocks := Build(homeAt(1, 20, height))
		for i, b := range blocks {
			if b.Rect.Height < 0 || b.Rect.Width < 0 {
				t.Fatalf("height %d block %d: negative rect %+v", height, i, b.Rect)
			}
			if b.Rect.Y < 0 || b.Rect.Y+b.Rect.Height > height {
				t.Fatalf("height %d block %d: rect %+v outside viewport", height, i, b.Rect)
			}
		}
	}
}

func TestTinyViewportStartsAtTop(t *testing.T) {
	blocks := Build(homeAt(0, 20, 3))
	if blocks[0].Rect.Y != 0 || blocks[0].Rect.Height != 2 {
		t.Fatalf("expected counter band at top, got %+v", blocks[0].Rect)
	}
	if blocks[1].Rect.Y != 2 || blocks[1].Rect.Height != 1 {
		t.Fatalf("expected instruction on last row, got %+v", blocks[1].Rect)
	}
	for _, b := range blocks[2:] {
		if !b.Rect.Empty() {
			t.Fatalf("expected collapsed band for %q, got %+v", b.Text, b.Rect)
		}
	}
}

func TestBuildUnknownViewIsEmpty(t *testing.T) {
	if blocks := Build(nil); blocks != nil {
		t.Fatalf("expected no blocks for nil view, got %#v", blocks)
	}
}

func TestHugeViewportPaddingDoesNotOverflow(t *testing.T) {
	blocks := Build(homeAt(0, 80, math.MaxInt))
	if got := blocks[0].Rect.Y; got != math.MaxInt/2 {
		t.Fatalf("expected counter at row %d, got %d", math.MaxInt/2, got)
	}
	for i, b := range blocks {
		if b.Rect.Y < 0 || b.Rect.Height < 0 {
			t.Fatalf("block %d: unexpected rect %+v", i, b.Rect)
		}
	}
}
