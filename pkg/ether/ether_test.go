package ether

import (
	"math"
	"testing"

	"github.com/Kevin-Rudy/goether/pkg/unit"
)

// mockBand 模拟宿主band，用于测试
type mockBand struct {
	steps []ZoomStep
	index int
}

func (b *mockBand) ZoomSteps() []ZoomStep { return b.steps }
func (b *mockBand) ZoomIndex() int        { return b.index }
func (b *mockBand) SetZoomIndex(i int)    { b.index = i }

// mockTimeline 模拟宿主timeline
type mockTimeline[T any] struct {
	unit   Unit[T]
	length float64
}

func (t *mockTimeline[T]) Unit() Unit[T]        { return t.unit }
func (t *mockTimeline[T]) PixelLength() float64 { return t.length }

func newNumberTimeline(length float64) *mockTimeline[float64] {
	return &mockTimeline[float64]{unit: unit.NewNumber(), length: length}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// TestNewSelectsEngine 测试按Kind选择ether实现
func TestNewSelectsEngine(t *testing.T) {
	if _, ok := New[float64](NewParams()).(*LinearEther[float64]); !ok {
		t.Error("Expected linear ether for default params")
	}

	if _, ok := New[float64](NewParams(WithZone(0, 1, 2))).(*HotZoneEther[float64]); !ok {
		t.Error("Expected hot-zone ether when a zone is declared")
	}

	if _, ok := New[float64](NewParams(WithKind(KindHotZone))).(*HotZoneEther[float64]); !ok {
		t.Error("Expected hot-zone ether for KindHotZone without zones")
	}
}

// TestInitialPosition 测试两种ether的初始位置指令
func TestInitialPosition(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected float64
	}{
		{"startsOn", []Option{WithStartsOn(7.0)}, 7},
		{"endsOn", []Option{WithEndsOn(20.0)}, 10},
		{"centersOn", []Option{WithCentersOn(20.0)}, 15},
		{"default", nil, -5},
		{"startsOn wins", []Option{WithCentersOn(20.0), WithEndsOn(30.0), WithStartsOn(1.0)}, 1},
		{"endsOn over centersOn", []Option{WithCentersOn(20.0), WithEndsOn(30.0)}, 20},
		{"string value", []Option{WithStartsOn("3.5")}, 3.5},
	}

	for _, kind := range []Kind{KindLinear, KindHotZone} {
		for _, tt := range tests {
			t.Run(string(kind)+"/"+tt.name, func(t *testing.T) {
				opts := append([]Option{WithKind(kind), WithInterval(1, 100)}, tt.opts...)
				e := New[float64](NewParams(opts...))
				if err := e.Initialize(&mockBand{}, newNumberTimeline(1000)); err != nil {
					t.Fatalf("Initialize failed: %v", err)
				}

				got := e.PixelOffsetToDate(0)
				if !almostEqual(got, tt.expected) {
					t.Errorf("Expected reference date %.3f, got %.3f", tt.expected, got)
				}
			})
		}
	}
}

// TestInitializeParseError 测试位置指令与热区解析失败时返回错误
func TestInitializeParseError(t *testing.T) {
	e := New[float64](NewParams(WithStartsOn("not-a-number")))
	if err := e.Initialize(&mockBand{}, newNumberTimeline(100)); err == nil {
		t.Error("Expected error for unparsable startsOn")
	}

	hz := New[float64](NewParams(WithStartsOn(0.0), WithZone("x", 10.0, 2)))
	if err := hz.Initialize(&mockBand{}, newNumberTimeline(100)); err == nil {
		t.Error("Expected error for unparsable zone start")
	}
}

// TestSetDateAndZeroShift 测试设置参考时间与零像素平移
func TestSetDateAndZeroShift(t *testing.T) {
	for _, kind := range []Kind{KindLinear, KindHotZone} {
		e := New[float64](NewParams(WithInterval(1, 100), WithZone(10.0, 20.0, 2), WithKind(kind)))
		if err := e.Initialize(&mockBand{}, newNumberTimeline(800)); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		e.SetDate(12.25)
		e.ShiftPixels(0)
		if got := e.PixelOffsetToDate(0); got != 12.25 {
			t.Errorf("[%s] Expected reference 12.25 after zero shift, got %v", kind, got)
		}
		if got := e.DateToPixelOffset(12.25); got != 0 {
			t.Errorf("[%s] Expected offset 0 at reference date, got %v", kind, got)
		}
	}
}

// TestZoomClamp 测试缩放在步进表两端钳制
func TestZoomClamp(t *testing.T) {
	steps := []ZoomStep{
		{Unit: unit.Hour, PixelsPerInterval: 50},
		{Unit: unit.Day, PixelsPerInterval: 100},
		{Unit: unit.Week, PixelsPerInterval: 100},
		{Unit: unit.Month, PixelsPerInterval: 200},
	}

	for _, kind := range []Kind{KindLinear, KindHotZone} {
		band := &mockBand{steps: steps, index: 1}
		e := New[float64](NewParams(
			WithKind(kind),
			WithInterval(unit.GregorianUnitLengths[unit.Day], 100),
			WithStartsOn(0.0),
			WithUnitLengths(unit.GregorianUnitLengths),
		))
		if err := e.Initialize(band, newNumberTimeline(1000)); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if got := e.Zoom(true); got != unit.Hour-unit.Day {
			t.Errorf("[%s] Expected net change %d, got %d", kind, unit.Hour-unit.Day, got)
		}
		if band.index != 0 {
			t.Errorf("[%s] Expected zoom index 0, got %d", kind, band.index)
		}

		// 一小时 = 50 像素
		if got := e.DateToPixelOffset(unit.GregorianUnitLengths[unit.Hour]); !almostEqual(got, 50) {
			t.Errorf("[%s] Expected one hour to span 50px, got %v", kind, got)
		}

		for i := 0; i < len(steps)+2; i++ {
			if got := e.Zoom(true); got != 0 {
				t.Errorf("[%s] Expected net change 0 at index 0, got %d", kind, got)
			}
		}
		if band.index != 0 {
			t.Errorf("[%s] Expected zoom index to stay 0, got %d", kind, band.index)
		}

		for i := 0; i < len(steps)-1; i++ {
			e.Zoom(false)
		}
		if band.index != len(steps)-1 {
			t.Errorf("[%s] Expected zoom index %d, got %d", kind, len(steps)-1, band.index)
		}
		for i := 0; i < 3; i++ {
			if got := e.Zoom(false); got != 0 {
				t.Errorf("[%s] Expected net change 0 at last index, got %d", kind, got)
			}
		}
		if band.index != len(steps)-1 {
			t.Errorf("[%s] Expected zoom index to stay %d, got %d", kind, len(steps)-1, band.index)
		}
	}
}

// TestZoomWithoutSteps 测试空步进表时缩放为空操作
func TestZoomWithoutSteps(t *testing.T) {
	e := NewLinearEther[float64](NewParams(WithInterval(1, 100), WithStartsOn(0.0)))
	if err := e.Initialize(&mockBand{}, newNumberTimeline(100)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if got := e.Zoom(true); got != 0 {
		t.Errorf("Expected 0 with empty zoom table, got %d", got)
	}
	if got := e.DateToPixelOffset(1); got != 100 {
		t.Errorf("Expected scale to stay unchanged, got %v", got)
	}
}
