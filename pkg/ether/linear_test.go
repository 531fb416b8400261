package ether

import (
	"testing"
)

// TestLinearConversions 测试线性ether的基本换算
func TestLinearConversions(t *testing.T) {
	e := NewLinearEther[float64](NewParams(WithInterval(1, 100), WithStartsOn(0.0)))
	if err := e.Initialize(&mockBand{}, newNumberTimeline(1000)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := e.DateToPixelOffset(5); got != 500 {
		t.Errorf("Expected 500, got %v", got)
	}
	if got := e.DateToPixelOffset(-2.5); got != -250 {
		t.Errorf("Expected -250, got %v", got)
	}
	if got := e.PixelOffsetToDate(250); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}

	e.ShiftPixels(100)
	if got := e.Date(); got != 1 {
		t.Errorf("Expected reference 1 after shifting 100px, got %v", got)
	}
	if got := e.DateToPixelOffset(5); got != 400 {
		t.Errorf("Expected 400 after shift, got %v", got)
	}

	e.ShiftPixels(-300)
	if got := e.Date(); got != -2 {
		t.Errorf("Expected reference -2 after shifting -300px, got %v", got)
	}
}

// TestLinearScale 测试间隔与像素密度共同决定比例
func TestLinearScale(t *testing.T) {
	e := NewLinearEther[float64](NewParams(WithInterval(10, 40), WithStartsOn(100.0)))
	if err := e.Initialize(&mockBand{}, newNumberTimeline(400)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// 10个单位 = 40像素
	if got := e.DateToPixelOffset(110); got != 40 {
		t.Errorf("Expected 40, got %v", got)
	}
	if got := e.PixelOffsetToDate(-80); got != 80 {
		t.Errorf("Expected 80, got %v", got)
	}
}

// BenchmarkLinearDateToPixelOffset 基准测试线性换算
func BenchmarkLinearDateToPixelOffset(b *testing.B) {
	e := NewLinearEther[float64](NewParams(WithInterval(1, 100), WithStartsOn(0.0)))
	if err := e.Initialize(&mockBand{}, newNumberTimeline(1000)); err != nil {
		b.Fatalf("Initialize failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.DateToPixelOffset(float64(i))
	}
}
