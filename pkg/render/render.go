// Package render 把band标尺渲染为PNG图片
// 每个band占一条水平区域：标题、热区着色、坐标轴与刻度标签
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/Kevin-Rudy/goether/pkg/band"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// 单个band内的纵向布局（相对band顶部）
const (
	titleBaseline = 13
	zoneTop       = 17
	tickLength    = 5
	labelGap      = 4
)

// Renderer PNG渲染器
type Renderer struct {
	config *Config
	face   font.Face
}

// New 创建渲染器
func New(config *Config) *Renderer {
	return &Renderer{
		config: config,
		face:   basicfont.Face7x13,
	}
}

// Render 并发渲染所有band，图片宽度取最宽的band视口
func (r *Renderer) Render(ctx context.Context, tracks []band.Track) (*image.RGBA, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("没有可渲染的band")
	}

	width := 0
	for _, track := range tracks {
		width = max(width, int(math.Ceil(track.PixelLength())))
	}
	if width <= 0 {
		return nil, fmt.Errorf("视口宽度必须大于0")
	}

	height := r.config.BandHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height*len(tracks)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)

	// 每个band写入互不重叠的子图
	for i, track := range tracks {
		track := track
		dst := img.SubImage(image.Rect(0, i*height, width, (i+1)*height)).(*image.RGBA)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.RenderBand(dst, track)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderBand 把一个band绘制到 dst 的范围内
func (r *Renderer) RenderBand(dst *image.RGBA, track band.Track) {
	bounds := dst.Bounds()
	top := bounds.Min.Y
	axisY := r.axisY(bounds)

	draw.Draw(dst, bounds, image.NewUniform(r.config.Background), image.Point{}, draw.Src)

	// 热区着色
	for _, span := range track.ZoneSpans() {
		tint := r.config.Magnified
		if span.Magnify < 1 {
			tint = r.config.Compressed
		}
		x0 := bounds.Min.X + int(math.Floor(span.X0))
		x1 := bounds.Min.X + int(math.Ceil(span.X1))
		rect := image.Rect(x0, top+zoneTop, x1, axisY).Intersect(bounds)
		draw.Draw(dst, rect, image.NewUniform(tint), image.Point{}, draw.Over)
	}

	// 坐标轴
	r.fill(dst, image.Rect(bounds.Min.X, axisY, bounds.Max.X, axisY+1), r.config.Foreground)

	// 刻度与标签，重叠的标签被跳过
	nextFree := bounds.Min.X
	for _, tick := range track.Ticks(r.config.TickSpacing) {
		x := bounds.Min.X + int(math.Round(tick.X))
		if x >= bounds.Max.X {
			continue
		}
		r.fill(dst, image.Rect(x, axisY, x+1, axisY+tickLength), r.config.Foreground)

		labelWidth := font.MeasureString(r.face, tick.Label).Ceil()
		if x < nextFree || x+labelWidth > bounds.Max.X {
			continue
		}
		r.drawText(dst, tick.Label, x, axisY+tickLength+labelGap, r.config.Foreground)
		nextFree = x + labelWidth + r.face.Metrics().Height.Ceil()
	}

	r.drawText(dst, track.Name(), bounds.Min.X+4, top+titleBaseline-r.face.Metrics().Ascent.Ceil(), r.config.TitleColor)

	// band之间的分隔线
	r.fill(dst, image.Rect(bounds.Min.X, bounds.Max.Y-1, bounds.Max.X, bounds.Max.Y), r.config.SeparatorColor)
}

// axisY 坐标轴所在行：底部留出刻度与一行标签
func (r *Renderer) axisY(bounds image.Rectangle) int {
	return bounds.Max.Y - tickLength - labelGap - r.face.Metrics().Height.Ceil() - 2
}

func (r *Renderer) fill(dst *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText 以 (x, y) 为文字左上角绘制
func (r *Renderer) drawText(dst *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// WritePNG 渲染并写入PNG文件
func (r *Renderer) WritePNG(ctx context.Context, tracks []band.Track, path string) error {
	img, err := r.Render(ctx, tracks)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	encodeErr := png.Encode(f, img)
	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("PNG编码失败: %w", encodeErr)
	}
	return closeErr
}
