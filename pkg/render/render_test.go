package render

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"github.com/Kevin-Rudy/goether/pkg/ether"
	"github.com/Kevin-Rudy/goether/pkg/unit"
)

// newTestTrack 创建数值band：1个单位 = 10像素，视口400像素
func newTestTrack(t testing.TB, name string, opts ...ether.Option) band.Track {
	t.Helper()
	n := unit.NewNumber()
	params := ether.NewParams(append([]ether.Option{
		ether.WithInterval(1, 10),
		ether.WithStartsOn(0.0),
	}, opts...)...)

	b, err := band.New[float64](band.Definition{Name: name, Params: params, PixelLength: 400}, n, n)
	if err != nil {
		t.Fatalf("band.New failed: %v", err)
	}
	return b
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// TestRender 测试多个band的渲染布局
func TestRender(t *testing.T) {
	config := DefaultConfig()
	r := New(config)

	tracks := []band.Track{
		newTestTrack(t, "magnified", ether.WithZone(10.0, 20.0, 2)),
		newTestTrack(t, "compressed", ether.WithZone(10.0, 20.0, 0.5)),
	}

	img, err := r.Render(context.Background(), tracks)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := img.Bounds(); got.Dx() != 400 || got.Dy() != 2*config.BandHeight {
		t.Fatalf("Expected 400x%d image, got %v", 2*config.BandHeight, got)
	}

	background := rgba(config.Background)
	axisY := r.axisY(image.Rect(0, 0, 400, config.BandHeight))
	zoneY := (zoneTop + axisY) / 2

	// 热区 [10,20) 在第一个band中映射到像素 [100,300)
	if got := img.RGBAAt(50, zoneY); got != background {
		t.Errorf("Expected background outside the zone, got %v", got)
	}
	magnified := img.RGBAAt(200, zoneY)
	if magnified == background {
		t.Error("Expected a tint inside the magnified zone")
	}

	// 第二个band的压缩区 [10,20) 映射到像素 [100,150)
	compressed := img.RGBAAt(120, config.BandHeight+zoneY)
	if compressed == background || compressed == magnified {
		t.Errorf("Expected a distinct compressed tint, got %v", compressed)
	}
	if got := img.RGBAAt(200, config.BandHeight+zoneY); got != background {
		t.Errorf("Expected background after the compressed zone, got %v", got)
	}

	if got := img.RGBAAt(250, axisY); got != rgba(config.Foreground) {
		t.Errorf("Expected axis color at y=%d, got %v", axisY, got)
	}
	if got := img.RGBAAt(100, axisY+2); got != rgba(config.Foreground) {
		t.Errorf("Expected a tick mark at x=100, got %v", got)
	}
}

// TestRenderErrors 测试渲染的错误情况
func TestRenderErrors(t *testing.T) {
	r := New(DefaultConfig())

	if _, err := r.Render(context.Background(), nil); err == nil {
		t.Error("Expected error for no tracks")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, []band.Track{newTestTrack(t, "a")}); err == nil {
		t.Error("Expected error for a cancelled context")
	}
}

// TestWritePNG 测试写入PNG文件
func TestWritePNG(t *testing.T) {
	r := New(NewConfigWithOptions(WithConcurrency(1), WithBandHeight(50)))
	path := filepath.Join(t.TempDir(), "bands.png")

	tracks := []band.Track{newTestTrack(t, "a"), newTestTrack(t, "b"), newTestTrack(t, "c")}
	if err := r.WritePNG(context.Background(), tracks, path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 400 || got.Dy() != 150 {
		t.Errorf("Expected 400x150 image, got %v", got)
	}

	if err := r.WritePNG(context.Background(), tracks, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("Expected error for an unwritable path")
	}
}

// TestConfigValidate 测试渲染配置验证
func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	invalid := []*Config{
		NewConfigWithOptions(WithBandHeight(20)),
		NewConfigWithOptions(WithTickSpacing(0)),
		NewConfigWithOptions(WithConcurrency(0)),
	}
	for i, config := range invalid {
		if err := config.Validate(); err == nil {
			t.Errorf("Config %d: expected validation error", i)
		}
	}

	noColor := DefaultConfig()
	noColor.Magnified = nil
	if err := noColor.Validate(); err == nil {
		t.Error("Expected error for a missing color")
	}
}

// BenchmarkRender 基准测试渲染性能
func BenchmarkRender(b *testing.B) {
	r := New(DefaultConfig())
	tracks := []band.Track{
		newTestTrack(b, "a", ether.WithZone(10.0, 20.0, 2)),
		newTestTrack(b, "b"),
		newTestTrack(b, "c", ether.WithZone(5.0, 8.0, 0.5)),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(context.Background(), tracks); err != nil {
			b.Fatal(err)
		}
	}
}
