package band

import (
	"math"
	"strings"
	"testing"

	"github.com/Kevin-Rudy/goether/pkg/ether"
	"github.com/Kevin-Rudy/goether/pkg/unit"
)

// newNumberBand 创建数值band用于测试
func newNumberBand(t testing.TB, pixelLength float64, steps []ether.ZoomStep, opts ...ether.Option) *Band[float64] {
	t.Helper()
	n := unit.NewNumber()
	b, err := New[float64](Definition{
		Name:        "test",
		Params:      ether.NewParams(opts...),
		ZoomSteps:   steps,
		PixelLength: pixelLength,
	}, n, n)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// TestNewRequiresParams 测试缺少ether参数时报错
func TestNewRequiresParams(t *testing.T) {
	n := unit.NewNumber()
	if _, err := New[float64](Definition{Name: "x"}, n, n); err == nil {
		t.Error("Expected error when params are missing")
	}

	_, err := New[float64](Definition{Name: "bad", Params: ether.NewParams(ether.WithStartsOn("abc"))}, n, n)
	if err == nil {
		t.Fatal("Expected error for unparsable startsOn")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("Expected band name in error, got %v", err)
	}
}

// TestTicks 测试刻度的位置与标签
func TestTicks(t *testing.T) {
	b := newNumberBand(t, 100, nil, ether.WithInterval(1, 10), ether.WithStartsOn(0.0))

	ticks := b.Ticks(20)
	if len(ticks) != 6 {
		t.Fatalf("Expected 6 ticks, got %d", len(ticks))
	}

	expected := []string{"0", "2", "4", "6", "8", "10"}
	for i, tick := range ticks {
		if tick.X != float64(i)*20 {
			t.Errorf("Tick %d: expected X %v, got %v", i, float64(i)*20, tick.X)
		}
		if tick.Label != expected[i] {
			t.Errorf("Tick %d: expected label %q, got %q", i, expected[i], tick.Label)
		}
	}

	if b.Ticks(0) != nil {
		t.Error("Expected no ticks for zero spacing")
	}
}

// TestCenterAndScroll 测试居中与平移
func TestCenterAndScroll(t *testing.T) {
	b := newNumberBand(t, 100, nil, ether.WithInterval(1, 10), ether.WithStartsOn(0.0))

	b.Center(50)
	if got := b.XToDate(50); !almostEqual(got, 50) {
		t.Errorf("Expected 50 at viewport center, got %v", got)
	}
	start, end := b.VisibleRange()
	if !almostEqual(start, 45) || !almostEqual(end, 55) {
		t.Errorf("Expected visible range [45, 55], got [%v, %v]", start, end)
	}

	b.Scroll(30)
	if got := b.XToDate(0); !almostEqual(got, 48) {
		t.Errorf("Expected left edge 48 after scrolling, got %v", got)
	}
	if got := b.DateToX(50); !almostEqual(got, 20) {
		t.Errorf("Expected 50 at x=20 after scrolling, got %v", got)
	}
}

// TestSetPixelLengthKeepsCenter 测试调整视口宽度时中心时间不变
func TestSetPixelLengthKeepsCenter(t *testing.T) {
	b := newNumberBand(t, 100, nil, ether.WithInterval(1, 10), ether.WithCentersOn(50.0))

	b.SetPixelLength(200)
	if b.PixelLength() != 200 {
		t.Errorf("Expected pixel length 200, got %v", b.PixelLength())
	}
	if got := b.XToDate(100); !almostEqual(got, 50) {
		t.Errorf("Expected 50 to stay centered, got %v", got)
	}
}

// TestZoomAtKeepsAnchor 测试缩放时锚点时间保持在原像素位置
func TestZoomAtKeepsAnchor(t *testing.T) {
	steps := []ether.ZoomStep{
		{Unit: 0, PixelsPerInterval: 10},
		{Unit: 1, PixelsPerInterval: 10},
	}
	b := newNumberBand(t, 100, steps,
		ether.WithInterval(1, 10),
		ether.WithStartsOn(0.0),
		ether.WithUnitLengths(map[int]float64{0: 1, 1: 10}),
	)

	if got := b.ZoomAt(false, 30); got != 1 {
		t.Errorf("Expected net change 1, got %d", got)
	}
	if b.ZoomIndex() != 1 {
		t.Errorf("Expected zoom index 1, got %d", b.ZoomIndex())
	}
	if got := b.XToDate(30); !almostEqual(got, 3) {
		t.Errorf("Expected anchor 3 to stay at x=30, got %v", got)
	}
	if got := b.XToDate(0); !almostEqual(got, -27) {
		t.Errorf("Expected left edge -27, got %v", got)
	}

	// 已经是最粗的步进
	if got := b.ZoomAt(false, 30); got != 0 {
		t.Errorf("Expected no change at the last step, got %d", got)
	}

	if got := b.ZoomAt(true, 30); got != -1 {
		t.Errorf("Expected net change -1, got %d", got)
	}
	if got := b.XToDate(30); !almostEqual(got, 3) {
		t.Errorf("Expected anchor 3 after zooming back in, got %v", got)
	}
}

// TestZoomInOutKeepsCenter 测试以视口中心缩放
func TestZoomInOutKeepsCenter(t *testing.T) {
	steps := []ether.ZoomStep{
		{Unit: 0, PixelsPerInterval: 10},
		{Unit: 1, PixelsPerInterval: 10},
	}
	b := newNumberBand(t, 100, steps,
		ether.WithInterval(1, 10),
		ether.WithCentersOn(50.0),
		ether.WithUnitLengths(map[int]float64{0: 1, 1: 10}),
	)

	if got := b.ZoomOut(); got != 1 {
		t.Errorf("Expected net change 1, got %d", got)
	}
	start, end := b.VisibleRange()
	if !almostEqual(start, 0) || !almostEqual(end, 100) {
		t.Errorf("Expected visible range [0, 100] after zooming out, got [%v, %v]", start, end)
	}

	if got := b.ZoomIn(); got != -1 {
		t.Errorf("Expected net change -1, got %d", got)
	}
	if got := b.XToDate(50); !almostEqual(got, 50) {
		t.Errorf("Expected 50 to stay centered, got %v", got)
	}
}

// TestZoomAtWithoutSteps 测试没有缩放步进时不做任何事
func TestZoomAtWithoutSteps(t *testing.T) {
	b := newNumberBand(t, 100, nil, ether.WithInterval(1, 10), ether.WithStartsOn(0.0))
	if got := b.ZoomAt(true, 50); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := b.XToDate(0); got != 0 {
		t.Errorf("Expected reference unchanged, got %v", got)
	}
}

// TestZoneSpans 测试热区映射到视口
func TestZoneSpans(t *testing.T) {
	b := newNumberBand(t, 2500, nil,
		ether.WithInterval(1, 100),
		ether.WithStartsOn(0.0),
		ether.WithZone(10.0, 20.0, 2),
	)

	spans := b.ZoneSpans()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d: %+v", len(spans), spans)
	}
	if !almostEqual(spans[0].X0, 1000) || !almostEqual(spans[0].X1, 2500) {
		t.Errorf("Expected span [1000, 2500], got [%v, %v]", spans[0].X0, spans[0].X1)
	}
	if spans[0].Magnify != 2 {
		t.Errorf("Expected magnify 2, got %v", spans[0].Magnify)
	}

	// 热区移出视口
	b.Scroll(5000)
	if spans := b.ZoneSpans(); len(spans) != 0 {
		t.Errorf("Expected no spans after scrolling past the zone, got %+v", spans)
	}

	linear := newNumberBand(t, 100, nil, ether.WithInterval(1, 10))
	if linear.ZoneSpans() != nil {
		t.Error("Expected no spans for a linear band")
	}
}

// TestPartition 测试分区导出
func TestPartition(t *testing.T) {
	b := newNumberBand(t, 1000, nil,
		ether.WithInterval(1, 100),
		ether.WithStartsOn(0.0),
		ether.WithZone(10.0, 20.0, 2),
	)

	expected := []ZoneRow{
		{Start: "-inf", End: "10", Magnify: 1},
		{Start: "10", End: "20", Magnify: 2},
		{Start: "20", End: "+inf", Magnify: 1},
	}
	rows := b.Partition()
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(expected), len(rows), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("Row %d: expected %+v, got %+v", i, expected[i], rows[i])
		}
	}

	linear := newNumberBand(t, 1000, nil, ether.WithInterval(1, 100))
	if rows := linear.Partition(); len(rows) != 1 || rows[0].Start != "-inf" || rows[0].End != "+inf" {
		t.Errorf("Expected a single unbounded row for a linear band, got %+v", rows)
	}
}

// TestPixelOfAndDateAt 测试文本形式的双向换算
func TestPixelOfAndDateAt(t *testing.T) {
	b := newNumberBand(t, 1000, nil,
		ether.WithInterval(1, 100),
		ether.WithStartsOn(0.0),
		ether.WithZone(10.0, 20.0, 2),
	)

	x, err := b.PixelOf("15")
	if err != nil {
		t.Fatalf("PixelOf failed: %v", err)
	}
	if !almostEqual(x, 2000) {
		t.Errorf("Expected 2000, got %v", x)
	}

	if got := b.DateAt(3500); got != "25" {
		t.Errorf("Expected 25, got %q", got)
	}

	if _, err := b.PixelOf("abc"); err == nil {
		t.Error("Expected error for unparsable input")
	}
}

// TestDescribe 测试状态描述
func TestDescribe(t *testing.T) {
	steps := []ether.ZoomStep{{Unit: 0, PixelsPerInterval: 10}, {Unit: 1, PixelsPerInterval: 10}}
	b := newNumberBand(t, 100, steps, ether.WithInterval(1, 10), ether.WithStartsOn(0.0))

	desc := b.Describe()
	for _, want := range []string{"test", "0", "10", "1/2"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Expected %q in description %q", want, desc)
		}
	}
}

// BenchmarkTicks 基准测试刻度生成
func BenchmarkTicks(b *testing.B) {
	band := newNumberBand(b, 2000, nil,
		ether.WithInterval(1, 100),
		ether.WithStartsOn(0.0),
		ether.WithZone(5.0, 10.0, 3),
		ether.WithZone(12.0, 15.0, 0.5),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		band.Ticks(10)
	}
}
